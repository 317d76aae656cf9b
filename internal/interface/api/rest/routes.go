package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth          = RouteApiV1 + "/auth"
	RouteRegister      = RouteAuth + "/registrar"
	RouteLogin         = RouteAuth + "/login"
	RouteResetPassword = RouteAuth + "/reset-password/:user_id"

	// users; the Spanish wire contract predates the Go rewrite. Lookups by
	// rol/ciudad/codigo/dni are query params on the collection route because
	// gin's tree cannot mix static and param segments under /usuarios.
	RouteUsers     = RouteApiV1 + "/usuarios"
	RouteUser      = RouteUsers + "/:user_id"
	RouteUserPhoto = RouteUser + "/foto"

	// static photo serving
	RouteUploads = "/uploads"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
