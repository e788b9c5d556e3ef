package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePlantRequest entrada para publicar una planta (rol seller).
type CreatePlantRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Category    string          `json:"category" validate:"omitempty,max=100"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Image       string          `json:"image" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Quantity    int             `json:"quantity" validate:"min=0"`
}

// UpdateQuantityRequest entrada de PATCH /update-quatity/:id.
// Los nombres de campo son el contrato externo heredado: status "decrease"
// resta updatedQuantity, cualquier otro valor lo suma.
type UpdateQuantityRequest struct {
	UpdatedQuantity int    `json:"updatedQuantity" validate:"min=0"`
	Status          string `json:"status"`
}

// PlantResponse salida de una publicación.
type PlantResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	SellerEmail string          `json:"seller_email"`
	CreatedAt   time.Time       `json:"created_at"`
}
