package usecase

import (
	"strings"
	"time"

	"lunch-backend/config"
	"lunch-backend/internal/model"
	"lunch-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (u *UserUsecase) Register(name, email, password, role string) error {
	// 1. Hashing Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if role == "" {
		role = "Petugas"
	}

	// 2. Simpan ke Database
	user := model.User{
		Name:     strings.TrimSpace(name),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: string(hashedPassword),
		Role:     role,
	}
	return u.repo.Create(&user)
}

func (u *UserUsecase) Login(email, password string) (string, *model.User, error) {
	// 1. Cari user berdasarkan email
	user, err := u.repo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, err // User tidak ditemukan
	}

	// 2. Bandingkan Password (Input vs Hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, err // Password salah
	}

	// 3. Jika benar, buat Token JWT
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(), // Token expired dalam 24 jam
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return "", nil, err
	}

	return signed, user, nil
}

func (u *UserUsecase) List() ([]model.User, error) {
	return u.repo.GetAll()
}
