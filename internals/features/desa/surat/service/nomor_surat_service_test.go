package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/surat/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.SuratModel{}))
	return db
}

func seedSurat(t *testing.T, db *gorm.DB, n int, at time.Time) {
	t.Helper()
	for i := 0; i < n; i++ {
		row := model.SuratModel{
			NomorSurat:  fmt.Sprintf("%03d/DOM/%s/%d", i+1, "JAN", at.Year()),
			JenisSurat:  "domisili",
			Kategori:    "keterangan",
			Perihal:     "Surat Keterangan Domisili",
			Status:      "pending",
			PendudukID:  1,
			CreatedByID: 1,
			CreatedAt:   at,
		}
		require.NoError(t, db.Create(&row).Error)
	}
}

func TestGenerateNomorSurat(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, time.January, 20, 9, 0, 0, 0, time.UTC)
	seedSurat(t, db, 4, now.Add(-48*time.Hour))

	nomor, err := GenerateNomorSurat(db, now, "domisili")
	require.NoError(t, err)
	assert.Equal(t, "005/DOM/JAN/2026", nomor)
}

func TestGenerateNomorSuratUrutanPerTahun(t *testing.T) {
	db := newTestDB(t)
	// surat tahun lalu tidak ikut dihitung
	seedSurat(t, db, 3, time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC))

	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	nomor, err := GenerateNomorSurat(db, now, "sku")
	require.NoError(t, err)
	assert.Equal(t, "001/SKU/MAR/2026", nomor)
}

func TestGenerateNomorSuratKodePendek(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	// jenis lebih pendek dari 3 huruf dipakai apa adanya
	nomor, err := GenerateNomorSurat(db, now, "su")
	require.NoError(t, err)
	assert.Equal(t, "001/SU/AUG/2026", nomor)

	nomor, err = GenerateNomorSurat(db, now, "pindah-sementara")
	require.NoError(t, err)
	assert.Equal(t, "001/PIN/AUG/2026", nomor)
}
