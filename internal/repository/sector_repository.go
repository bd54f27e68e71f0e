package repository

import (
	"lunch-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SectorRepository interface {
	GetAll() ([]model.Sector, error)
	Upsert(sector *model.Sector) error
}

type sectorRepository struct {
	db *gorm.DB
}

func NewSectorRepository(db *gorm.DB) SectorRepository {
	return &sectorRepository{db}
}

func (r *sectorRepository) GetAll() ([]model.Sector, error) {
	var sectors []model.Sector
	err := r.db.Order("name asc").Find(&sectors).Error
	return sectors, err
}

// Upsert: kalau normalized id sudah ada, cukup perbarui display name
// (perilaku merge, menambah sektor yang sama dua kali bukan error).
func (r *sectorRepository) Upsert(sector *model.Sector) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "normalized_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(sector).Error
}
