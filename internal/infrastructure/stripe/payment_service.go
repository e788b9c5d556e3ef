// Package stripe adapta el puerto de pagos al SDK oficial de Stripe.
package stripe

import (
	"context"
	"fmt"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/jhoicas/plantnet-api/internal/application/ports"
)

var _ ports.PaymentIntents = (*PaymentService)(nil)

// PaymentService crea payment intents vía Stripe. El cliente se construye una
// sola vez en el arranque con la secret key del proceso (sin estado global).
type PaymentService struct {
	api *client.API
}

// NewPaymentService construye el adaptador con la secret key del proveedor.
func NewPaymentService(secretKey string) *PaymentService {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &PaymentService{api: api}
}

// CreateIntent solicita un payment intent con métodos de pago automáticos y
// devuelve el client secret con el que el frontend confirma el cobro.
// Sin clave de idempotencia ni reintentos (brecha heredada, documentada).
func (s *PaymentService) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	params := &stripego.PaymentIntentParams{
		Amount:   stripego.Int64(amountCents),
		Currency: stripego.String(currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("crear payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
