package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse respuesta mínima para operaciones sin cuerpo útil
// (emisión de cookie, logout).
type SuccessResponse struct {
	Success bool `json:"success"`
}
