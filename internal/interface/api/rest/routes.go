package rest

const (
	// auth
	RouteAuth    = "/auth"
	RouteSignUp  = RouteAuth + "/signup"
	RouteLogin   = RouteAuth + "/login"
	RouteRefresh = RouteAuth + "/refresh"
	RouteLogout  = RouteAuth + "/logout"

	// object lifecycle
	RouteAction      = "/action"
	RouteUpload      = RouteAction + "/upload"
	RouteListMe      = RouteAction + "/list-me"
	RouteDownload    = RouteAction + "/download-presigned/:fileName"
	RouteMoveToTrash = RouteAction + "/move-to-trash/:fileName"
	RouteTrash       = RouteAction + "/trash"
	RouteRestoreFile = RouteAction + "/restore-file/:fileName"
	RouteDeleteFile  = RouteAction + "/delete/:fileName"

	// search
	RouteSearch          = "/search"
	RouteSearchName      = RouteSearch + "/name"
	RouteSearchExtension = RouteSearch + "/extension"

	// users
	RouteUsers      = "/users"
	RouteUserMe     = RouteUsers + "/me"
	RouteUserAvatar = RouteUserMe + "/avatar"
	RouteUser       = RouteUsers + "/:user_id"
	RouteUserRole   = RouteUser + "/role"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
