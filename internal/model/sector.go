package model

import "time"

// Sector adalah daftar referensi sektor/bagian. Primary key = hasil
// normalisasi nama (contoh: "Gudang Utama" -> "GUDANG_UTAMA") supaya
// penambahan nama yang sama tidak bikin baris ganda.
type Sector struct {
	NormalizedID string    `json:"normalizedId" gorm:"primaryKey;size:64"`
	Name         string    `json:"name" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
}
