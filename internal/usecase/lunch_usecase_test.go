package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"lunch-backend/internal/localday"
	"lunch-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeEmployee() model.Employee {
	return model.Employee{Code: "AD-1234", Name: "Budi Santoso", Sector: "Administrasi", Active: true}
}

func newLunchUsecaseAt(t *testing.T, instant time.Time, employees ...model.Employee) (*LunchUsecase, *stubLunchLogRepo) {
	t.Helper()
	logs := newStubLunchLogRepo()
	u := NewLunchUsecase(newStubEmployeeRepo(employees...), logs)
	u.now = func() time.Time { return instant }
	return u, logs
}

func TestRegisterFirstCallOK(t *testing.T) {
	instant := time.Date(2026, 8, 10, 12, 0, 0, 0, localday.Location())
	u, logs := newLunchUsecaseAt(t, instant, activeEmployee())

	res, err := u.Register("AD-1234")
	require.NoError(t, err)

	assert.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "Budi Santoso", res.EmployeeName)
	assert.Equal(t, "2026-08-10", res.DayLocal)
	require.NotNil(t, res.RegisteredAt)
	assert.True(t, res.RegisteredAt.Equal(instant))
	assert.Len(t, logs.logs, 1)
}

func TestRegisterSameDayIdempotent(t *testing.T) {
	first := time.Date(2026, 8, 10, 12, 0, 0, 0, localday.Location())
	u, logs := newLunchUsecaseAt(t, first, activeEmployee())

	res1, err := u.Register("AD-1234")
	require.NoError(t, err)
	require.Equal(t, StatusOK, res1.Status)

	// Scan kedua 5 detik kemudian, masih hari yang sama
	u.now = func() time.Time { return first.Add(5 * time.Second) }
	res2, err := u.Register("AD-1234")
	require.NoError(t, err)

	assert.Equal(t, StatusAlreadyRegistered, res2.Status)
	assert.Equal(t, "Budi Santoso", res2.EmployeeName)
	require.NotNil(t, res2.RegisteredAt)
	// Jam registrasi yang dikembalikan harus jam scan PERTAMA
	assert.True(t, res2.RegisteredAt.Equal(first))
	assert.Len(t, logs.logs, 1, "scan kedua tidak boleh menulis baris baru")
}

func TestRegisterConcurrentRace(t *testing.T) {
	instant := time.Date(2026, 8, 10, 12, 0, 0, 0, localday.Location())
	u, logs := newLunchUsecaseAt(t, instant, activeEmployee())

	const callers = 20
	results := make(chan string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := u.Register("AD-1234")
			assert.NoError(t, err)
			results <- res.Status
		}()
	}
	wg.Wait()
	close(results)

	okCount, alreadyCount := 0, 0
	for status := range results {
		switch status {
		case StatusOK:
			okCount++
		case StatusAlreadyRegistered:
			alreadyCount++
		}
	}

	assert.Equal(t, 1, okCount, "tepat satu caller yang menang")
	assert.Equal(t, callers-1, alreadyCount)
	assert.Len(t, logs.logs, 1)
}

func TestRegisterDayBoundary(t *testing.T) {
	loc := localday.Location()
	beforeMidnight := time.Date(2026, 8, 10, 23, 59, 59, 0, loc)
	u, logs := newLunchUsecaseAt(t, beforeMidnight, activeEmployee())

	res1, err := u.Register("AD-1234")
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res1.Status)
	assert.Equal(t, "2026-08-10", res1.DayLocal)

	// Lewat tengah malam sipil: hari baru, boleh registrasi lagi
	u.now = func() time.Time { return time.Date(2026, 8, 11, 0, 0, 1, 0, loc) }
	res2, err := u.Register("AD-1234")
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res2.Status)
	assert.Equal(t, "2026-08-11", res2.DayLocal)

	assert.Len(t, logs.logs, 2)
}

func TestRegisterInactiveEmployee(t *testing.T) {
	employee := activeEmployee()
	employee.Active = false
	instant := time.Date(2026, 8, 10, 12, 0, 0, 0, localday.Location())
	u, logs := newLunchUsecaseAt(t, instant, employee)

	// Riwayat kemarin tidak boleh mempengaruhi gate nonaktif
	logs.logs["AD-1234_2026-08-09"] = model.LunchLog{ID: "AD-1234_2026-08-09"}

	res, err := u.Register("AD-1234")
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, res.Status)
	assert.Len(t, logs.logs, 1, "tidak ada baris baru")
}

func TestRegisterUnknownAndEmptyCode(t *testing.T) {
	instant := time.Date(2026, 8, 10, 12, 0, 0, 0, localday.Location())
	u, logs := newLunchUsecaseAt(t, instant, activeEmployee())

	for _, code := range []string{"ZZ-9999", "", "   "} {
		res, err := u.Register(code)
		require.NoError(t, err)
		assert.Equal(t, StatusNotFound, res.Status, "kode %q", code)
	}
	assert.Empty(t, logs.logs)
}

func TestRegisterStoreFault(t *testing.T) {
	instant := time.Date(2026, 8, 10, 12, 0, 0, 0, localday.Location())
	u, logs := newLunchUsecaseAt(t, instant, activeEmployee())
	logs.fail = errors.New("connection refused")

	res, err := u.Register("AD-1234")
	require.Error(t, err)
	assert.Equal(t, StatusError, res.Status)
	assert.Empty(t, logs.logs, "gangguan infrastruktur tidak boleh commit apa-apa")
}

func TestLogsByMonthRange(t *testing.T) {
	instant := time.Date(2026, 8, 10, 12, 0, 0, 0, localday.Location())
	u, logs := newLunchUsecaseAt(t, instant, activeEmployee())

	base := time.Date(2024, 1, 31, 11, 0, 0, 0, time.UTC)
	seed := []model.LunchLog{
		{ID: "A_2024-01-31", DayLocal: "2024-01-31", RegisteredAt: base},
		{ID: "B_2024-02-01", DayLocal: "2024-02-01", RegisteredAt: base.AddDate(0, 0, 1)},
		{ID: "C_2024-02-01", DayLocal: "2024-02-01", RegisteredAt: base.AddDate(0, 0, 1).Add(time.Hour)},
		{ID: "D_2024-02-29", DayLocal: "2024-02-29", RegisteredAt: base.AddDate(0, 0, 29)},
		{ID: "E_2024-03-01", DayLocal: "2024-03-01", RegisteredAt: base.AddDate(0, 0, 30)},
	}
	for _, l := range seed {
		logs.logs[l.ID] = l
	}

	result, err := u.LogsByMonth("2024-02")
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "B_2024-02-01", result[0].ID)
	assert.Equal(t, "C_2024-02-01", result[1].ID)
	assert.Equal(t, "D_2024-02-29", result[2].ID)

	_, err = u.LogsByMonth("02-2024")
	assert.ErrorIs(t, err, localday.ErrBadMonthRef)
}

func TestLastSixMonthsStats(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, localday.Location())
	u, logs := newLunchUsecaseAt(t, now, activeEmployee())

	seed := []model.LunchLog{
		{ID: "A_2026-03-05", DayLocal: "2026-03-05", RegisteredAt: now.AddDate(0, -5, 0)},
		{ID: "B_2026-08-01", DayLocal: "2026-08-01", RegisteredAt: now.AddDate(0, 0, -14)},
		{ID: "C_2026-08-10", DayLocal: "2026-08-10", RegisteredAt: now.AddDate(0, 0, -5)},
		// Di luar window 6 bulan, harus diabaikan
		{ID: "D_2026-02-01", DayLocal: "2026-02-01", RegisteredAt: now.AddDate(0, -6, 0)},
	}
	for _, l := range seed {
		logs.logs[l.ID] = l
	}

	buckets, err := u.LastSixMonthsStats()
	require.NoError(t, err)
	require.Len(t, buckets, 6)

	keys := make([]string, 0, 6)
	counts := make(map[string]int, 6)
	for _, b := range buckets {
		keys = append(keys, b.Key)
		counts[b.Key] = b.Count
	}

	assert.Equal(t, []string{"2026-03", "2026-04", "2026-05", "2026-06", "2026-07", "2026-08"}, keys)
	assert.Equal(t, 1, counts["2026-03"])
	assert.Equal(t, 0, counts["2026-04"], "bucket kosong tetap muncul")
	assert.Equal(t, 0, counts["2026-05"])
	assert.Equal(t, 2, counts["2026-08"])
}
