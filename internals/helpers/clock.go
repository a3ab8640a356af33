package helper

import "time"

// Clock memisahkan pembacaan waktu dari logika bulan/tahun berjalan
// (dashboard, penomoran surat) supaya bisa dipatok di test.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func NewClock() Clock { return realClock{} }

// FixedClock selalu mengembalikan instant yang sama.
type FixedClock struct {
	T time.Time
}

func (f FixedClock) Now() time.Time { return f.T }

// MonthRange mengembalikan [awal bulan, awal bulan berikutnya) untuk instant t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// YearRange mengembalikan [1 Jan, 1 Jan tahun berikutnya) untuk instant t.
func YearRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(1, 0, 0)
}
