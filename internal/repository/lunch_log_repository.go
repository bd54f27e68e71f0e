package repository

import (
	"lunch-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LunchLogRepository interface {
	RegisterOnce(entry *model.LunchLog) (created bool, existing *model.LunchLog, err error)
	GetByDay(dayLocal string) ([]model.LunchLog, error)
	GetByDayRange(startDay, endDay string) ([]model.LunchLog, error)
	GetRecent(limit int) ([]model.LunchLog, error)
}

type lunchLogRepository struct {
	db *gorm.DB
}

func NewLunchLogRepository(db *gorm.DB) LunchLogRepository {
	return &lunchLogRepository{db}
}

// RegisterOnce adalah conditional write inti sistem: insert log makan siang
// HANYA jika belum ada baris dengan primary key yang sama (kode_hari).
// Kalau ada dua request barengan untuk karyawan yang sama, tepat satu yang
// menang insert; yang kalah membaca baris yang sudah ada dan dikembalikan
// lewat existing. Semuanya dalam satu transaksi, jadi hasilnya all-or-nothing.
func (r *lunchLogRepository) RegisterOnce(entry *model.LunchLog) (bool, *model.LunchLog, error) {
	var (
		created  bool
		existing *model.LunchLog
	)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// OnConflict DoNothing = insert kondisional di level database,
		// bukan cek-dulu-baru-insert yang bisa kecolongan race.
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			created = true
			return nil
		}

		// Kalah race / sudah registrasi duluan: baca record yang menang
		// supaya caller bisa menampilkan jam registrasi aslinya.
		var row model.LunchLog
		if err := tx.Where("id = ?", entry.ID).First(&row).Error; err != nil {
			return err
		}
		existing = &row
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	return created, existing, nil
}

func (r *lunchLogRepository) GetByDay(dayLocal string) ([]model.LunchLog, error) {
	var logs []model.LunchLog
	err := r.db.Where("day_local = ?", dayLocal).
		Order("registered_at asc").
		Find(&logs).Error
	return logs, err
}

func (r *lunchLogRepository) GetByDayRange(startDay, endDay string) ([]model.LunchLog, error) {
	var logs []model.LunchLog
	err := r.db.Where("day_local >= ? AND day_local <= ?", startDay, endDay).
		Order("day_local asc, registered_at asc").
		Find(&logs).Error
	return logs, err
}

func (r *lunchLogRepository) GetRecent(limit int) ([]model.LunchLog, error) {
	var logs []model.LunchLog
	err := r.db.Order("registered_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}
