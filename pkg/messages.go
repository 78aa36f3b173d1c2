package pkg

// User facing messages shared by all handlers. Clients show them verbatim.
const (
	MsgInternal         = "Ha ocurrido un error inesperado. Inténtalo de nuevo."
	MsgInvalidBody      = "Los datos enviados no son válidos."
	MsgInvalidContent   = "El contenido debe ser JSON."
	MsgUnauthorized     = "Debes iniciar sesión."
	MsgForbidden        = "No tienes permiso para realizar esta acción."
	MsgNotFound         = "El recurso solicitado no existe."
	MsgTooManyRequests  = "Demasiadas solicitudes. Espera un momento e inténtalo de nuevo."
	MsgInvalidPageParam = "Los parámetros de paginación no son válidos."
	MsgInvalidDate      = "La fecha no es válida (usa AAAA-MM-DD)."
)
