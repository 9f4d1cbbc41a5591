package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth         = RouteApiV1 + "/auth"
	RouteAuthCallback = RouteAuth + "/callback"
	RouteAuthMe       = RouteAuth + "/me"
	RouteAuthLogout   = RouteAuth + "/logout"

	// files
	RouteFiles        = RouteApiV1 + "/files"
	RouteFile         = RouteFiles + "/:file_id"
	RouteFileLike     = RouteFile + "/like"
	RouteFileComments = RouteFile + "/comments"
	RouteUploadURL    = RouteFiles + "/upload-url"
	RouteUploadDirect = RouteFiles + "/upload"
	RouteMyFiles      = RouteApiV1 + "/me/files"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
