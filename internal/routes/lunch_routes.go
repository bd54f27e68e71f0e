package routes

import (
	"lunch-backend/internal/handler"
	"lunch-backend/internal/middleware"
	"lunch-backend/internal/repository"
	"lunch-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLunchRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	logRepo := repository.NewLunchLogRepository(db)
	hdl := handler.NewLunchHandler(usecase.NewLunchUsecase(employeeRepo, logRepo))

	api := app.Group("/api/lunch", middleware.Auth)

	api.Post("/register", hdl.Register)
	api.Get("/logs", hdl.GetLogs)
	api.Get("/logs/month", hdl.GetLogsByMonth)
	api.Get("/logs/recent", hdl.GetRecent)
	api.Get("/stats/six-months", hdl.GetSixMonthStats)
	api.Get("/export", hdl.Export)
}
