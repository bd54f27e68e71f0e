package usecase

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"lunch-backend/internal/model"
	"lunch-backend/internal/repository"

	"golang.org/x/text/unicode/norm"
)

const StatusEmployeeCodeExists = "EMPLOYEE_CODE_EXISTS"

// ErrCodeGenerationFailed: 20x percobaan generate kode semuanya bentrok.
// Praktis cuma kejadian kalau satu prefix sektor sudah hampir penuh.
var ErrCodeGenerationFailed = errors.New("CODE_GENERATION_FAILED")

const maxCodeAttempts = 20

type AddEmployeeResult struct {
	Status   string          `json:"status"`
	Employee *model.Employee `json:"employee,omitempty"`
}

type EmployeeUsecase struct {
	repo repository.EmployeeRepository
}

func NewEmployeeUsecase(repo repository.EmployeeRepository) *EmployeeUsecase {
	return &EmployeeUsecase{repo: repo}
}

// Add mendaftarkan karyawan baru. Dua kebijakan kode dalam satu pintu:
// admin boleh kirim kode sendiri (duplikat -> EMPLOYEE_CODE_EXISTS),
// atau kosongkan kode dan sistem generate dari nama sektor.
func (u *EmployeeUsecase) Add(name, sector, code string, active bool) (AddEmployeeResult, error) {
	employee := model.Employee{
		Name:   strings.TrimSpace(name),
		Sector: strings.TrimSpace(sector),
		Active: active,
	}

	// Variant 1: kode dari admin
	if trimmed := strings.TrimSpace(code); trimmed != "" {
		employee.Code = trimmed
		created, err := u.repo.CreateIfAbsent(&employee)
		if err != nil {
			return AddEmployeeResult{Status: StatusError}, err
		}
		if !created {
			return AddEmployeeResult{Status: StatusEmployeeCodeExists}, nil
		}
		return AddEmployeeResult{Status: StatusOK, Employee: &employee}, nil
	}

	// Variant 2: generate kode "<PREFIX>-<4 digit acak>" lalu insert
	// kondisional. Insert-nya sekaligus jadi cek tabrakan, jadi dua admin
	// yang kebetulan dapat kode sama tidak mungkin dua-duanya sukses.
	prefix := SectorPrefix(employee.Sector)
	for i := 0; i < maxCodeAttempts; i++ {
		employee.Code = fmt.Sprintf("%s-%d", prefix, 1000+rand.Intn(9000))
		created, err := u.repo.CreateIfAbsent(&employee)
		if err != nil {
			return AddEmployeeResult{Status: StatusError}, err
		}
		if created {
			return AddEmployeeResult{Status: StatusOK, Employee: &employee}, nil
		}
	}

	return AddEmployeeResult{Status: StatusError}, ErrCodeGenerationFailed
}

func (u *EmployeeUsecase) List() ([]model.Employee, error) {
	return u.repo.GetAll()
}

func (u *EmployeeUsecase) Recent(limit int) ([]model.Employee, error) {
	if limit <= 0 {
		limit = 5
	}
	return u.repo.GetRecent(limit)
}

func (u *EmployeeUsecase) Toggle(code string, active bool) error {
	return u.repo.SetActive(strings.TrimSpace(code), active)
}

func (u *EmployeeUsecase) Update(code, name, sector string, active bool) (*model.Employee, error) {
	employee, err := u.repo.FindByCode(strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}

	employee.Name = strings.TrimSpace(name)
	employee.Sector = strings.TrimSpace(sector)
	employee.Active = active

	if err := u.repo.Update(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (u *EmployeeUsecase) Delete(code string) error {
	return u.repo.Delete(strings.TrimSpace(code))
}

// SectorPrefix menurunkan prefix kode dari nama sektor: buang diakritik,
// buang non-huruf, uppercase, lalu ambil huruf pertama + konsonan pertama.
// "Administrasi" -> "AD", "Gudang" -> "GG" (G juga konsonan pertama).
func SectorPrefix(sector string) string {
	normalized := strings.ToUpper(stripNonLetters(stripDiacritics(strings.TrimSpace(sector))))

	first := "S"
	if len(normalized) > 0 {
		first = string(normalized[0])
	}

	consonant := "X"
	for _, r := range normalized {
		if !strings.ContainsRune("AEIOU", r) {
			consonant = string(r)
			break
		}
	}

	return first + consonant
}

// stripDiacritics: dekomposisi NFD lalu buang combining marks ("ç" -> "c").
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func stripNonLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) && r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
