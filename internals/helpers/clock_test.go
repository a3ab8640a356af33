package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthRange(t *testing.T) {
	loc := time.FixedZone("WITA", 8*3600)

	start, end := MonthRange(time.Date(2026, time.January, 17, 13, 45, 0, 0, loc))
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, loc), end)

	// Desember menyeberang tahun
	start, end = MonthRange(time.Date(2025, time.December, 31, 23, 59, 59, 0, loc))
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, loc), end)
}

func TestYearRange(t *testing.T) {
	start, end := YearRange(time.Date(2026, time.July, 4, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC)
	clock := FixedClock{T: at}
	assert.Equal(t, at, clock.Now())
	assert.Equal(t, at, clock.Now()) // tidak bergeser
}
