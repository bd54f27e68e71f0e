package handler

import (
	"lunch-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	usecase *usecase.UserUsecase
}

func NewUserHandler(u *usecase.UserUsecase) *UserHandler {
	return &UserHandler{usecase: u}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email dan password wajib diisi"})
	}

	token, user, err := h.usecase.Login(req.Email, req.Password)
	if err != nil {
		// Jangan bedakan "email tidak ada" vs "password salah"
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Email atau Password salah"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"data": fiber.Map{
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=Admin Petugas"`
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data user tidak lengkap atau tidak valid"})
	}

	if err := h.usecase.Register(req.Name, req.Email, req.Password, req.Role); err != nil {
		// Kemungkinan besar email sudah terdaftar (unique constraint)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal registrasi user"})
	}

	return c.JSON(fiber.Map{"message": "User berhasil terdaftar"})
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.usecase.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data user"})
	}
	return c.JSON(fiber.Map{"data": users})
}
