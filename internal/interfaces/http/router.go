package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justdc/club-api/internal/application/auth"
	"github.com/justdc/club-api/internal/application/usecase"
	"github.com/justdc/club-api/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	StatsUC   *usecase.StatsUseCase
	AdminUC   *usecase.AdminUseCase
	EventUC   *usecase.EventUseCase
	GalleryUC *usecase.GalleryUseCase
	AlumniUC  *usecase.AlumniUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Orden de los gates: primero el
// middleware de auth (identidad), después RequireRole / RequirePermission
// (autorización); ninguna ruta consulta roles sin identidad verificada.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.StatsUC)
	users.Post("/", userHandler.Signup) // alta pública, idempotente

	authed := users.Group("/", AuthMiddleware(deps.JWTSecret))
	authed.Get("/profile", userHandler.GetProfile)
	authed.Put("/profile", userHandler.UpdateProfile)
	authed.Get("/permissions", userHandler.GetPermissions)
	authed.Get("/stats", userHandler.GetStats)
	authed.Get("/members", RequirePermission(deps.UserUC, "view_members"), userHandler.Members)

	// Admin (auth + rol admin)
	admin := users.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(deps.UserUC, rbac.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/all", adminHandler.All)
	admin.Put("/assign-role", adminHandler.AssignRole)
	admin.Get("/search/:query", adminHandler.Search)
	admin.Get("/export", adminHandler.ExportRoster)

	// Events (lectura pública, escritura autenticada)
	events := api.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Get("/", eventHandler.List)
	events.Post("/", AuthMiddleware(deps.JWTSecret), eventHandler.Create)

	// Gallery
	gallery := api.Group("/gallery")
	galleryHandler := NewGalleryHandler(deps.GalleryUC)
	gallery.Get("/", galleryHandler.List)
	gallery.Post("/", AuthMiddleware(deps.JWTSecret), galleryHandler.Create)

	// Alumni
	alumni := api.Group("/alumni")
	alumniHandler := NewAlumniHandler(deps.AlumniUC, deps.UserUC)
	alumni.Get("/", alumniHandler.List)
	alumni.Post("/", AuthMiddleware(deps.JWTSecret), alumniHandler.Create)
	alumni.Delete("/:id", AuthMiddleware(deps.JWTSecret), alumniHandler.Delete)
}
