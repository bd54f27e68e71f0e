package usecase

import (
	"errors"
	"strings"
	"unicode"

	"lunch-backend/internal/model"
	"lunch-backend/internal/repository"
)

var (
	ErrSectorRequired = errors.New("SECTOR_REQUIRED")
	ErrSectorInvalid  = errors.New("SECTOR_INVALID")
)

type SectorUsecase struct {
	repo repository.SectorRepository
}

func NewSectorUsecase(repo repository.SectorRepository) *SectorUsecase {
	return &SectorUsecase{repo: repo}
}

func (u *SectorUsecase) List() ([]model.Sector, error) {
	return u.repo.GetAll()
}

// Add menyimpan sektor dengan id hasil normalisasi nama. Nama yang sama
// (beda kapital/aksen) jatuh ke id yang sama, jadi tidak ada baris ganda.
func (u *SectorUsecase) Add(name string) (*model.Sector, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrSectorRequired
	}

	id := NormalizeSectorID(trimmed)
	if id == "" {
		return nil, ErrSectorInvalid
	}

	sector := model.Sector{NormalizedID: id, Name: trimmed}
	if err := u.repo.Upsert(&sector); err != nil {
		return nil, err
	}
	return &sector, nil
}

// NormalizeSectorID: buang diakritik, non-alfanumerik jadi "_", rapikan
// underscore ganda/pinggir, uppercase. "Gudang  Utama!" -> "GUDANG_UTAMA".
func NormalizeSectorID(name string) string {
	stripped := stripDiacritics(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(stripped))
	lastUnderscore := false
	for _, r := range stripped {
		switch {
		case (unicode.IsLetter(r) || unicode.IsDigit(r)) && r < 128:
			b.WriteRune(unicode.ToUpper(r))
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}

	return strings.Trim(b.String(), "_")
}
