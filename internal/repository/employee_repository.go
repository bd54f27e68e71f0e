package repository

import (
	"lunch-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmployeeRepository interface {
	FindByCode(code string) (*model.Employee, error)
	CreateIfAbsent(employee *model.Employee) (bool, error)
	GetAll() ([]model.Employee, error)
	GetRecent(limit int) ([]model.Employee, error)
	Update(employee *model.Employee) error
	SetActive(code string, active bool) error
	Delete(code string) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) FindByCode(code string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("code = ?", code).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// CreateIfAbsent insert karyawan baru HANYA jika kodenya belum dipakai.
// Return false kalau kode sudah ada (tidak menimpa data lama).
func (r *employeeRepository) CreateIfAbsent(employee *model.Employee) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(employee)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *employeeRepository) GetAll() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Order("name asc").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetRecent(limit int) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Order("created_at desc").Limit(limit).Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepository) SetActive(code string, active bool) error {
	res := r.db.Model(&model.Employee{}).Where("code = ?", code).Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(code string) error {
	return r.db.Delete(&model.Employee{}, "code = ?", code).Error
}
