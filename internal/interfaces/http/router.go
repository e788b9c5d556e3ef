package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plantnet-api/internal/application/auth"
	"github.com/jhoicas/plantnet-api/internal/application/usecase"
	"github.com/jhoicas/plantnet-api/internal/domain/entity"
	"github.com/jhoicas/plantnet-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	PlantUC   *usecase.PlantUseCase
	OrderUC   *usecase.OrderUseCase
	PaymentUC *usecase.PaymentUseCase
	StatsUC   *usecase.StatsUseCase
	// UserRepo alimenta la puerta de rol: el rol se relee de la DB por petición.
	UserRepo   repository.UserRepository
	JWTSecret  string
	Production bool
	ExpDays    int
}

// Router registra las rutas de la API. Los paths son el contrato externo
// heredado del servicio original y se conservan tal cual (incluido el typo
// de /update-quatity/:id).
func Router(app *fiber.App, deps RouterDeps) {
	authed := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin, deps.UserRepo)
	sellerOnly := RequireRole(entity.RoleSeller, deps.UserRepo)

	// Sesión (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Production, deps.ExpDays)
	app.Post("/jwt", authHandler.IssueToken)
	app.Get("/logout", authHandler.Logout)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC)
	app.Post("/users", userHandler.Upsert)
	app.Get("/user/role/:email", userHandler.GetRole)
	app.Get("/allUsers", authed, adminOnly, userHandler.ListAll)
	app.Patch("/update/user/role/:email", authed, adminOnly, userHandler.UpdateRole)
	// Sin puerta de auth: comportamiento observado del servicio original,
	// señalado como posible descuido pero conservado para no cambiar el contrato
	app.Patch("/become/seller/:email", userHandler.BecomeSeller)

	// Estadística del panel (requiere sesión, no rol)
	statsHandler := NewStatsHandler(deps.StatsUC)
	app.Get("/admin/statistic", authed, statsHandler.GetStatistic)

	// Plantas
	plantHandler := NewPlantHandler(deps.PlantUC)
	app.Post("/plants", authed, sellerOnly, plantHandler.Create)
	app.Get("/plants", plantHandler.List)
	app.Get("/plant/:id", plantHandler.GetByID)
	// Sin puerta de auth: mismo caso que /become/seller
	app.Patch("/update-quatity/:id", plantHandler.UpdateQuantity)

	// Pedidos y pagos
	orderHandler := NewOrderHandler(deps.OrderUC)
	app.Get("/all/orders/customer/:email", authed, orderHandler.ListByCustomer)
	app.Get("/all/orders/seller/:email", authed, sellerOnly, orderHandler.ListBySeller)
	app.Post("/orders", orderHandler.Create)

	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	app.Post("/create-intent", paymentHandler.CreateIntent)
}
