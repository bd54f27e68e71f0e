package model

import "time"

// LunchLog adalah bukti registrasi makan siang. Satu baris = satu karyawan
// satu hari. ID = "<kode>_<YYYY-MM-DD>", jadi duplikat di hari yang sama
// pasti bentrok di primary key (ini yang menjamin maksimal 1 registrasi
// per hari walaupun ada request barengan).
type LunchLog struct {
	ID           string    `json:"id" gorm:"primaryKey;size:64"`
	EmployeeCode string    `json:"employeeCode" gorm:"index;size:32"`
	EmployeeName string    `json:"employeeName"` // Snapshot nama saat registrasi (bukan join)
	DayLocal     string    `json:"dayLocal" gorm:"index;size:10"`
	RegisteredAt time.Time `json:"registeredAt"`
	Source       string    `json:"source"` // BARCODE / MANUAL
}

const (
	SourceBarcode = "BARCODE"
	SourceManual  = "MANUAL"
)

// LogID membentuk primary key deterministik dari (kode, hari).
func LogID(employeeCode, dayLocal string) string {
	return employeeCode + "_" + dayLocal
}
