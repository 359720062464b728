package dto

// ErrorResponse cuerpo de error HTTP. Required/Current acompañan las
// denegaciones de autorización (rol o permiso requerido vs. actual) para que
// la UI pueda explicar el rechazo; nunca incluyen datos de otros usuarios.
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Required any    `json:"required,omitempty"`
	Current  any    `json:"current,omitempty"`
}

// MessageResponse respuesta genérica con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
