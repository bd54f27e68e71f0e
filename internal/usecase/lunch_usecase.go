package usecase

import (
	"errors"
	"strings"
	"time"

	"lunch-backend/internal/localday"
	"lunch-backend/internal/model"
	"lunch-backend/internal/repository"

	"gorm.io/gorm"
)

// Status hasil bisnis. Ini NILAI BALIK biasa, bukan error, karena UI meja
// depan menampilkan layar berbeda untuk tiap status.
const (
	StatusOK                = "OK"
	StatusAlreadyRegistered = "ALREADY_REGISTERED"
	StatusNotFound          = "NOT_FOUND"
	StatusInactive          = "INACTIVE"
	StatusError             = "ERROR"
)

type RegisterResult struct {
	Status       string     `json:"status"`
	EmployeeName string     `json:"employeeName,omitempty"`
	DayLocal     string     `json:"dayLocal,omitempty"`
	RegisteredAt *time.Time `json:"registeredAt,omitempty"`
}

type MonthBucket struct {
	Key   string `json:"key"`   // YYYY-MM
	Label string `json:"label"` // contoh: "Jan 26"
	Count int    `json:"count"`
}

type LunchUsecase struct {
	employees repository.EmployeeRepository
	logs      repository.LunchLogRepository
	now       func() time.Time // bisa di-override di test
}

func NewLunchUsecase(employees repository.EmployeeRepository, logs repository.LunchLogRepository) *LunchUsecase {
	return &LunchUsecase{
		employees: employees,
		logs:      logs,
		now:       time.Now,
	}
}

// Register mencatat makan siang karyawan untuk hari sipil ini.
// Alur: resolve karyawan -> cek aktif -> conditional insert by (kode, hari).
// Efek samping selalu 0 atau 1 baris baru, tidak pernah lebih.
// error non-nil hanya untuk gangguan infrastruktur (DB down dsb); dalam kasus
// itu tidak ada yang ter-commit dan caller aman untuk retry.
func (u *LunchUsecase) Register(employeeCode string) (RegisterResult, error) {
	code := strings.TrimSpace(employeeCode)
	if code == "" {
		return RegisterResult{Status: StatusNotFound}, nil
	}

	// 1. Resolve karyawan
	employee, err := u.employees.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RegisterResult{Status: StatusNotFound}, nil
		}
		return RegisterResult{Status: StatusError}, err
	}

	// 2. Karyawan nonaktif tidak boleh registrasi, apapun riwayatnya
	if !employee.Active {
		return RegisterResult{Status: StatusInactive}, nil
	}

	// 3. Hitung day key lalu coba insert kondisional
	now := u.now()
	dayLocal := localday.Format(now)
	entry := model.LunchLog{
		ID:           model.LogID(code, dayLocal),
		EmployeeCode: code,
		EmployeeName: employee.Name, // snapshot, tahan rename
		DayLocal:     dayLocal,
		RegisteredAt: now,
		Source:       model.SourceBarcode,
	}

	created, existing, err := u.logs.RegisterOnce(&entry)
	if err != nil {
		return RegisterResult{Status: StatusError}, err
	}

	if !created {
		// Sudah registrasi hari ini: bukan error, kembalikan jam aslinya
		registeredAt := existing.RegisteredAt
		return RegisterResult{
			Status:       StatusAlreadyRegistered,
			EmployeeName: existing.EmployeeName,
			DayLocal:     dayLocal,
			RegisteredAt: &registeredAt,
		}, nil
	}

	return RegisterResult{
		Status:       StatusOK,
		EmployeeName: employee.Name,
		DayLocal:     dayLocal,
		RegisteredAt: &entry.RegisteredAt,
	}, nil
}

// LogsByDay: semua registrasi di satu hari sipil, urut jam registrasi.
func (u *LunchUsecase) LogsByDay(dayLocal string) ([]model.LunchLog, error) {
	return u.logs.GetByDay(dayLocal)
}

// LogsByMonth: semua registrasi dalam satu bulan, urut hari lalu jam.
func (u *LunchUsecase) LogsByMonth(monthRef string) ([]model.LunchLog, error) {
	startDay, endDay, err := localday.MonthRange(monthRef)
	if err != nil {
		return nil, err
	}
	return u.logs.GetByDayRange(startDay, endDay)
}

// RecentLogs: registrasi terakhir untuk widget dashboard.
func (u *LunchUsecase) RecentLogs(limit int) ([]model.LunchLog, error) {
	if limit <= 0 {
		limit = 10
	}
	return u.logs.GetRecent(limit)
}

// LastSixMonthsStats menghitung jumlah registrasi per bulan untuk 6 bulan
// terakhir (termasuk bulan berjalan). Bucket kosong tetap muncul dengan
// count 0 supaya grafik di UI tidak bolong.
func (u *LunchUsecase) LastSixMonthsStats() ([]MonthBucket, error) {
	keys := localday.LastSixMonths(u.now())
	startDay := keys[0] + "-01"
	endDay := localday.Format(u.now())

	logs, err := u.logs.GetByDayRange(startDay, endDay)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(keys))
	for _, entry := range logs {
		if len(entry.DayLocal) < 7 {
			continue
		}
		counts[entry.DayLocal[:7]]++
	}

	buckets := make([]MonthBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, MonthBucket{
			Key:   key,
			Label: monthLabel(key),
			Count: counts[key],
		})
	}
	return buckets, nil
}

var shortMonths = map[string]string{
	"01": "Jan", "02": "Feb", "03": "Mar", "04": "Apr",
	"05": "Mei", "06": "Jun", "07": "Jul", "08": "Agu",
	"09": "Sep", "10": "Okt", "11": "Nov", "12": "Des",
}

// monthLabel: "2026-08" -> "Agu 26" untuk label grafik.
func monthLabel(key string) string {
	if len(key) != 7 {
		return key
	}
	return shortMonths[key[5:]] + " " + key[2:4]
}
