package dto

// CreateIntentRequest entrada de POST /create-intent: planta y cantidad a cobrar.
type CreateIntentRequest struct {
	PlantID  string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// CreateIntentResponse secreto de cliente del payment intent, con el que el
// frontend confirma el pago contra el proveedor.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
