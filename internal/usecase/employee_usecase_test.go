package usecase

import (
	"regexp"
	"testing"

	"lunch-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectorPrefix(t *testing.T) {
	cases := map[string]string{
		"Administrasi": "AD",
		"Gudang":       "GG",
		"Produção":     "PP", // diakritik dibuang dulu
		"Keuangan":     "KK",
		"aeiou":        "AX", // tanpa konsonan: fallback X
		"":             "SX",
		"123!!":        "SX", // non-huruf dibuang semua
	}
	for input, want := range cases {
		assert.Equal(t, want, SectorPrefix(input), "input %q", input)
	}
}

func TestAddWithAdminSuppliedCode(t *testing.T) {
	repo := newStubEmployeeRepo()
	u := NewEmployeeUsecase(repo)

	res, err := u.Add("Budi Santoso", "Administrasi", "AD-1234", true)
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
	require.NotNil(t, res.Employee)
	assert.Equal(t, "AD-1234", res.Employee.Code)

	// Kode yang sama kedua kali: outcome bisnis, bukan error
	res, err = u.Add("Orang Lain", "Administrasi", "AD-1234", true)
	require.NoError(t, err)
	assert.Equal(t, StatusEmployeeCodeExists, res.Status)
	assert.Len(t, repo.employees, 1, "data lama tidak boleh tertimpa")
	assert.Equal(t, "Budi Santoso", repo.employees["AD-1234"].Name)
}

func TestAddWithGeneratedCode(t *testing.T) {
	repo := newStubEmployeeRepo()
	u := NewEmployeeUsecase(repo)

	res, err := u.Add("Siti Rahma", "Gudang", "", true)
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
	require.NotNil(t, res.Employee)
	assert.Regexp(t, regexp.MustCompile(`^GG-\d{4}$`), res.Employee.Code)
	assert.Len(t, repo.employees, 1)
}

func TestAddCodeGenerationCapped(t *testing.T) {
	repo := newStubEmployeeRepo()
	repo.rejectAll = true // semua kandidat dianggap sudah terpakai
	u := NewEmployeeUsecase(repo)

	_, err := u.Add("Siti Rahma", "Gudang", "", true)
	require.ErrorIs(t, err, ErrCodeGenerationFailed)
	assert.Equal(t, maxCodeAttempts, repo.createCalls, "loop harus berhenti di cap")
}

func TestToggleUnknownEmployee(t *testing.T) {
	u := NewEmployeeUsecase(newStubEmployeeRepo())
	err := u.Toggle("ZZ-0000", false)
	assert.Error(t, err)
}

func TestUpdatePreservesLogSnapshot(t *testing.T) {
	// Rename karyawan tidak menyentuh lunch log lama: log menyimpan
	// snapshot nama, bukan foreign key.
	repo := newStubEmployeeRepo(model.Employee{Code: "AD-1234", Name: "Budi", Sector: "Administrasi", Active: true})
	u := NewEmployeeUsecase(repo)

	updated, err := u.Update("AD-1234", "Budi Santoso", "Keuangan", false)
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", updated.Name)
	assert.Equal(t, "Keuangan", updated.Sector)
	assert.False(t, updated.Active)
}
