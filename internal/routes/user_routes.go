package routes

import (
	"lunch-backend/internal/handler"
	"lunch-backend/internal/middleware"
	"lunch-backend/internal/repository"
	"lunch-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	hdl := handler.NewUserHandler(usecase.NewUserUsecase(repo))

	auth := app.Group("/api/auth")
	auth.Post("/login", hdl.Login)
	// Bikin akun baru hanya boleh oleh Admin yang sudah login
	auth.Post("/register", middleware.Auth, middleware.Role("Admin"), hdl.Register)

	app.Get("/api/users", middleware.Auth, middleware.Role("Admin"), hdl.GetAll)
}
