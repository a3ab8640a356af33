package service

import (
	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/activity/model"
)

// Record menambahkan satu baris activity log. Dipanggil di dalam
// transaksi yang sama dengan tulisan utamanya supaya keduanya
// terlihat bersama atau tidak sama sekali.
func Record(tx *gorm.DB, action, description, entityType string, entityID uint, userID *uint) error {
	row := model.ActivityLogModel{
		Action:      action,
		Description: description,
		EntityType:  &entityType,
		EntityID:    &entityID,
		UserID:      userID,
	}
	return tx.Create(&row).Error
}

// Recent mengambil n aktivitas terbaru (terbaru dulu).
func Recent(db *gorm.DB, n int) ([]model.ActivityLogModel, error) {
	var rows []model.ActivityLogModel
	err := db.Order("created_at DESC, id DESC").Limit(n).Find(&rows).Error
	return rows, err
}
