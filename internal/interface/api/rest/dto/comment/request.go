package comment

type Request struct {
	Content string `json:"content"`
}
