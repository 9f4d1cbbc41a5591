package comment

const (
	InsertComment = `
		INSERT INTO comments (file_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING
		  id, file_id, user_id, content, created_at, updated_at
	`
	SelectFileComments = `
		SELECT c.id, c.file_id, c.user_id, c.content, c.created_at, c.updated_at,
		       u.id, u.name
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.file_id = $1
		ORDER BY c.created_at DESC, c.id DESC
	`
)
