package model

import "time"

// Employee adalah karyawan yang discan kodenya di meja depan.
// Primary key = kode karyawan (bukan auto increment), sama seperti
// kode yang tercetak di kartu barcode.
type Employee struct {
	Code      string    `json:"code" gorm:"primaryKey;size:32"`
	Name      string    `json:"name" gorm:"not null"`
	Sector    string    `json:"sector"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
