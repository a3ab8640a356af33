package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/configs"
	activityModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/activity/model"
	keluargaModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/keluarga/model"
	pendudukModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/model"
	profilModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/profil/model"
	suratModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/surat/model"
	wilayahModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/wilayah/model"
	userModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=desa_tirongan_atas&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true, // supaya pelanggaran unique jadi gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// Migrate menjalankan AutoMigrate untuk seluruh skema desa.
// Urutan mengikuti arah foreign key (parent dulu).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&profilModel.ProfilDesaModel{},
		&wilayahModel.DusunModel{},
		&wilayahModel.RWModel{},
		&wilayahModel.RTModel{},
		&keluargaModel.KeluargaModel{},
		&pendudukModel.PendudukModel{},
		&suratModel.SuratModel{},
		&activityModel.ActivityLogModel{},
	)
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
