package dto

// ErrorResponse cuerpo de error HTTP. El contrato del API expone un único
// campo "error" con el mensaje.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse respuesta mínima de operaciones de escritura.
type SuccessResponse struct {
	Success bool `json:"success"`
}
