// Package localday adalah satu-satunya tempat konversi waktu ke tanggal
// kalender lokal (day key). Registrasi, laporan harian, laporan bulanan,
// dan statistik 6 bulan SEMUA wajib lewat sini. Kalau ada path yang pakai
// timezone sendiri, bisa beda 1 hari dan duplikat check jadi bolong.
package localday

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"sync"
	"time"

	"lunch-backend/config"
)

// ErrBadMonthRef: referensi bulan bukan format YYYY-MM.
var ErrBadMonthRef = errors.New("referensi bulan tidak valid")

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location mengembalikan timezone sipil yang dipakai seluruh aplikasi.
// Dibaca sekali dari APP_TIMEZONE (setelah .env di-load di main).
func Location() *time.Location {
	locOnce.Do(func() {
		name := config.GetEnv("APP_TIMEZONE", "America/Sao_Paulo")
		l, err := time.LoadLocation(name)
		if err != nil {
			// Container minimal kadang tidak punya tzdata. Fallback ke
			// offset tetap -03 (Sao Paulo sudah tanpa DST sejak 2019).
			log.Printf("Warning: gagal load timezone %s (%v), fallback ke UTC-3", name, err)
			l = time.FixedZone("-03", -3*60*60)
		}
		loc = l
	})
	return loc
}

// Format mengubah instant ke day key YYYY-MM-DD di timezone sipil.
func Format(t time.Time) string {
	return t.In(Location()).Format("2006-01-02")
}

// Today adalah day key untuk "sekarang".
func Today() string {
	return Format(time.Now())
}

// Month mengubah instant ke kunci bulan YYYY-MM di timezone sipil.
func Month(t time.Time) string {
	return t.In(Location()).Format("2006-01")
}

var monthRefPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// MonthRange mengubah referensi bulan "YYYY-MM" jadi batas range day key
// [YYYY-MM-01, YYYY-MM-31]. Perbandingan string lexicographic aman karena
// formatnya zero-padded, jadi "-31" boleh dipakai walau bulannya pendek.
func MonthRange(monthRef string) (start, end string, err error) {
	if !monthRefPattern.MatchString(monthRef) {
		return "", "", fmt.Errorf("%w: %q", ErrBadMonthRef, monthRef)
	}
	return monthRef + "-01", monthRef + "-31", nil
}

// LastSixMonths mengembalikan tepat 6 kunci bulan YYYY-MM urut kronologis,
// diakhiri bulan sipil yang memuat now.
func LastSixMonths(now time.Time) []string {
	t := now.In(Location())
	// Mulai dari tanggal 1 supaya AddDate per-bulan tidak meleset di
	// akhir bulan (31 Jan - 1 bulan != 28 Feb kalau mulai dari tgl 31).
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)

	keys := make([]string, 0, 6)
	for offset := -5; offset <= 0; offset++ {
		keys = append(keys, first.AddDate(0, offset, 0).Format("2006-01"))
	}
	return keys
}
