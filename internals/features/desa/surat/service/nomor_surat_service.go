package service

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/surat/model"
	helper "github.com/syrlramadhan/desa-tirongan-atas/internals/helpers"
)

// GenerateNomorSurat menghasilkan nomor dokumen
// {urut 3 digit}/{KODE 3 huruf}/{BULAN}/{TAHUN}, mis. 004/DOM/JAN/2026.
// Urutan dihitung dari jumlah surat sepanjang tahun berjalan (semua jenis).
// Panggil di dalam transaksi yang sama dengan insert-nya: unique index
// nomor_surat yang menjadi penjaga terakhir saat dua request balapan.
func GenerateNomorSurat(tx *gorm.DB, now time.Time, jenisSurat string) (string, error) {
	start, end := helper.YearRange(now)

	var count int64
	if err := tx.Model(&model.SuratModel{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error; err != nil {
		return "", err
	}

	kode := strings.ToUpper(jenisSurat)
	if len(kode) > 3 {
		kode = kode[:3]
	}
	bulan := strings.ToUpper(now.Format("Jan"))

	return fmt.Sprintf("%03d/%s/%s/%d", count+1, kode, bulan, now.Year()), nil
}
