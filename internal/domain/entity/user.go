package entity

import "time"

// Roles del marketplace. El rol almacenado en DB es la única autoridad
// para las rutas de seller/admin; el token de sesión solo lleva identidad.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

// Estados opcionales de la cuenta dentro del flujo "convertirse en vendedor".
const (
	StatusRequested = "requested"
	StatusVerified  = "verified"
)

// User representa una cuenta del marketplace, única por email.
// Se crea en el primer inicio de sesión y nunca se elimina.
type User struct {
	Email     string
	Name      string
	Image     string
	Role      string // customer | seller | admin
	Status    string // vacío | requested | verified
	CreatedAt time.Time
	LastLogin time.Time
}
