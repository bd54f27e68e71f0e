package database

import (
	"log"

	"lunch-backend/internal/model"
	"lunch-backend/internal/usecase"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Sektor
	sectorNames := []string{"Administrasi", "Produksi", "Gudang", "Keuangan"}
	for _, name := range sectorNames {
		sector := model.Sector{
			NormalizedID: usecase.NormalizeSectorID(name),
			Name:         name,
		}
		db.FirstOrCreate(&sector, model.Sector{NormalizedID: sector.NormalizedID})
	}

	// 2. Seed User Admin default (ganti passwordnya setelah login pertama!)
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Gagal hash password admin:", err)
	}
	admin := model.User{
		Name:     "Administrator",
		Email:    "admin@kantin.local",
		Password: string(hashed),
		Role:     "Admin",
	}
	db.FirstOrCreate(&admin, model.User{Email: admin.Email})

	// 3. Seed contoh karyawan (kode manual, format sama dengan hasil generate)
	employees := []model.Employee{
		{Code: "AD-1001", Name: "Budi Santoso", Sector: "Administrasi", Active: true},
		{Code: "PP-2001", Name: "Siti Rahma", Sector: "Produksi", Active: true},
		{Code: "GG-3001", Name: "Agus Wijaya", Sector: "Gudang", Active: false},
	}
	for _, e := range employees {
		db.FirstOrCreate(&e, model.Employee{Code: e.Code})
	}
}
