package handler

import (
	"errors"

	"lunch-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Satu instance validator untuk seluruh handler di package ini.
var validate = validator.New()

type EmployeeHandler struct {
	usecase *usecase.EmployeeUsecase
}

func NewEmployeeHandler(u *usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{usecase: u}
}

type AddEmployeeRequest struct {
	Name   string `json:"name" validate:"required"`
	Sector string `json:"sector" validate:"required"`
	Code   string `json:"code"` // kosongkan agar digenerate sistem
	Active *bool  `json:"active"`
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req AddEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama dan sektor wajib diisi"})
	}

	// Default aktif kalau field tidak dikirim
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	result, err := h.usecase.Add(req.Name, req.Sector, req.Code, active)
	if err != nil {
		if errors.Is(err, usecase.ErrCodeGenerationFailed) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"status": "CODE_GENERATION_FAILED",
				"error":  "Gagal membuat kode unik, coba lagi",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan karyawan"})
	}

	// EMPLOYEE_CODE_EXISTS juga lewat sini: outcome bisnis, bukan error
	return c.JSON(result)
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	employees, err := h.usecase.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}
	return c.JSON(fiber.Map{"data": employees})
}

func (h *EmployeeHandler) GetRecent(c *fiber.Ctx) error {
	employees, err := h.usecase.Recent(c.QueryInt("limit", 5))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}
	return c.JSON(fiber.Map{"data": employees})
}

type ToggleEmployeeRequest struct {
	Active *bool `json:"active" validate:"required"`
}

func (h *EmployeeHandler) Toggle(c *fiber.Ctx) error {
	var req ToggleEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field active wajib diisi"})
	}

	if err := h.usecase.Toggle(c.Params("code"), *req.Active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "NOT_FOUND"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update status karyawan"})
	}

	return c.JSON(fiber.Map{"status": "OK"})
}

type UpdateEmployeeRequest struct {
	Name   string `json:"name" validate:"required"`
	Sector string `json:"sector" validate:"required"`
	Active bool   `json:"active"`
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var req UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama dan sektor wajib diisi"})
	}

	employee, err := h.usecase.Update(c.Params("code"), req.Name, req.Sector, req.Active)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "NOT_FOUND"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update karyawan"})
	}

	return c.JSON(fiber.Map{"status": "OK", "data": employee})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.usecase.Delete(c.Params("code")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus karyawan"})
	}
	return c.JSON(fiber.Map{"status": "OK", "message": "Karyawan berhasil dihapus"})
}
