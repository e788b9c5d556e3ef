package ports

import "context"

// PaymentIntents puerto hacia el proveedor de pagos hospedado. La implementación
// crea un intent confirmable por el cliente y devuelve su client secret.
// No se usa clave de idempotencia (brecha heredada del sistema original).
type PaymentIntents interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (clientSecret string, err error)
}
