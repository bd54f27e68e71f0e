package routes

import (
	"lunch-backend/internal/handler"
	"lunch-backend/internal/middleware"
	"lunch-backend/internal/repository"
	"lunch-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSectorRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewSectorRepository(db)
	hdl := handler.NewSectorHandler(usecase.NewSectorUsecase(repo))

	api := app.Group("/api/sectors", middleware.Auth)

	api.Get("/", hdl.GetAll)
	api.Post("/", middleware.Role("Admin"), hdl.Create)
}
