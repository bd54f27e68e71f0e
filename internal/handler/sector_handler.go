package handler

import (
	"errors"

	"lunch-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type SectorHandler struct {
	usecase *usecase.SectorUsecase
}

func NewSectorHandler(u *usecase.SectorUsecase) *SectorHandler {
	return &SectorHandler{usecase: u}
}

func (h *SectorHandler) GetAll(c *fiber.Ctx) error {
	sectors, err := h.usecase.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data sektor"})
	}
	return c.JSON(fiber.Map{"data": sectors})
}

type AddSectorRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *SectorHandler) Create(c *fiber.Ctx) error {
	var req AddSectorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama sektor wajib diisi"})
	}

	sector, err := h.usecase.Add(req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrSectorRequired) || errors.Is(err, usecase.ErrSectorInvalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama sektor tidak valid"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan sektor"})
	}

	return c.JSON(fiber.Map{"status": "OK", "data": sector})
}
