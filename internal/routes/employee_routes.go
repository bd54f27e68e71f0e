package routes

import (
	"lunch-backend/internal/handler"
	"lunch-backend/internal/middleware"
	"lunch-backend/internal/repository"
	"lunch-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewEmployeeRepository(db)
	hdl := handler.NewEmployeeHandler(usecase.NewEmployeeUsecase(repo))

	api := app.Group("/api/employees", middleware.Auth)

	// Petugas meja depan boleh lihat daftar (untuk registrasi manual)
	api.Get("/", hdl.GetAll)
	api.Get("/recent", hdl.GetRecent)

	// Perubahan data hanya untuk Admin
	admin := middleware.Role("Admin")
	api.Post("/", admin, hdl.Create)
	api.Patch("/:code/toggle", admin, hdl.Toggle)
	api.Put("/:code", admin, hdl.Update)
	api.Delete("/:code", admin, hdl.Delete)
}
