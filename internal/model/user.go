package model

import "gorm.io/gorm"

// User adalah akun admin/petugas meja depan (bukan karyawan yang absen makan).
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:Petugas"` // Admin / Petugas
}
