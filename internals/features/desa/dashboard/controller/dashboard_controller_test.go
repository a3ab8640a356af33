package controller_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "github.com/syrlramadhan/desa-tirongan-atas/internals/databases"
	activityModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/activity/model"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/dashboard/controller"
	keluargaModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/keluarga/model"
	pendudukModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/model"
	profilModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/profil/model"
	suratModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/surat/model"
	wilayahModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/wilayah/model"
	helper "github.com/syrlramadhan/desa-tirongan-atas/internals/helpers"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestApp(db *gorm.DB, at time.Time) *fiber.App {
	ctl := controller.NewDashboardController(db)
	ctl.Clock = helper.FixedClock{T: at}

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	app.Get("/api/dashboard", ctl.Get)
	return app
}

func getDashboard(t *testing.T, app *fiber.App) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, sonic.Unmarshal(raw, &parsed))
	return parsed
}

func seedPenduduk(t *testing.T, db *gorm.DB, nik, jenisKelamin string, createdAt time.Time) {
	t.Helper()
	row := pendudukModel.PendudukModel{
		NIK:              nik,
		Nama:             "Warga " + nik,
		TempatLahir:      "Tolitoli",
		TanggalLahir:     time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		JenisKelamin:     jenisKelamin,
		Agama:            "Islam",
		StatusPerkawinan: "Kawin",
		Pekerjaan:        "Petani",
		Pendidikan:       "SMA",
		Kewarganegaraan:  "WNI",
		Alamat:           "Dusun I",
		RT:               "01",
		RW:               "01",
		CreatedAt:        createdAt,
	}
	require.NoError(t, db.Create(&row).Error)
}

func seedSurat(t *testing.T, db *gorm.DB, nomor, jenis, status string, createdAt time.Time) {
	t.Helper()
	row := suratModel.SuratModel{
		NomorSurat:  nomor,
		JenisSurat:  jenis,
		Kategori:    "keterangan",
		Perihal:     "Surat " + jenis,
		Status:      status,
		PendudukID:  1,
		CreatedByID: 1,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&row).Error)
}

func TestDashboardAgregat(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	app := newTestApp(db, now)

	bulanIni := now.AddDate(0, 0, -3)
	bulanLalu := now.AddDate(0, -1, 0)

	seedPenduduk(t, db, "1111222233330001", "L", bulanLalu)
	seedPenduduk(t, db, "1111222233330002", "P", bulanIni)
	seedPenduduk(t, db, "1111222233330003", "P", bulanIni)

	require.NoError(t, db.Create(&keluargaModel.KeluargaModel{
		NoKK: "7205080001110001", KepalaKeluarga: "Budi", Alamat: "Dusun I", RT: "01", RW: "01",
	}).Error)

	dusun := wilayahModel.DusunModel{Nama: "Dusun I"}
	require.NoError(t, db.Create(&dusun).Error)
	rw := wilayahModel.RWModel{Nama: "RW 01", Nomor: "01", DusunID: dusun.ID}
	require.NoError(t, db.Create(&rw).Error)
	require.NoError(t, db.Create(&wilayahModel.RTModel{Nama: "RT 01", Nomor: "01", RWID: rw.ID}).Error)
	require.NoError(t, db.Create(&wilayahModel.RTModel{Nama: "RT 02", Nomor: "02", RWID: rw.ID}).Error)

	// 4 surat bulan ini (2 domisili, 1 sku selesai, 1 sku pending), 1 di luar bulan
	seedSurat(t, db, "001/DOM/MAR/2026", "domisili", "pending", bulanIni)
	seedSurat(t, db, "002/DOM/MAR/2026", "domisili", "proses", bulanIni)
	seedSurat(t, db, "003/SKU/MAR/2026", "sku", "selesai", bulanIni)
	seedSurat(t, db, "004/SKU/MAR/2026", "sku", "pending", bulanIni)
	seedSurat(t, db, "090/DOM/FEB/2026", "domisili", "selesai", bulanLalu)

	body := getDashboard(t, app)

	penduduk := body["penduduk"].(map[string]interface{})
	assert.EqualValues(t, 3, penduduk["total"])
	assert.EqualValues(t, 1, penduduk["lakiLaki"])
	assert.EqualValues(t, 2, penduduk["perempuan"])
	assert.EqualValues(t, 2, penduduk["pertumbuhanBulanIni"])

	assert.EqualValues(t, 1, body["keluarga"].(map[string]interface{})["total"])

	wilayah := body["wilayah"].(map[string]interface{})
	assert.EqualValues(t, 1, wilayah["dusun"])
	assert.EqualValues(t, 1, wilayah["rw"])
	assert.EqualValues(t, 2, wilayah["rt"])

	surat := body["surat"].(map[string]interface{})
	assert.EqualValues(t, 4, surat["totalBulanIni"])
	assert.EqualValues(t, 1, surat["selesai"])
	assert.EqualValues(t, 2, surat["pending"])
	assert.EqualValues(t, 1, surat["proses"]) // total - selesai - pending

	byJenis := surat["byJenis"].([]interface{})
	jenisCount := map[string]float64{}
	for _, j := range byJenis {
		row := j.(map[string]interface{})
		jenisCount[row["jenis"].(string)] = row["count"].(float64)
	}
	assert.EqualValues(t, 2, jenisCount["domisili"])
	assert.EqualValues(t, 2, jenisCount["sku"])

	assert.Nil(t, body["profilDesa"])
}

func TestDashboardRecentActivities(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	app := newTestApp(db, now)

	for i := 0; i < 7; i++ {
		entity := "penduduk"
		id := uint(i + 1)
		require.NoError(t, db.Create(&activityModel.ActivityLogModel{
			Action:      "CREATE",
			Description: "Data penduduk baru ditambahkan",
			EntityType:  &entity,
			EntityID:    &id,
		}).Error)
	}

	body := getDashboard(t, app)
	assert.Len(t, body["recentActivities"].([]interface{}), 5)
}

func TestDashboardProfilDesaTerisi(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db, time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC))

	require.NoError(t, db.Create(&profilModel.ProfilDesaModel{
		NamaDesa: "Tirongan Atas", KodeDesa: "7205082003", Kecamatan: "Dondo",
		Kabupaten: "Tolitoli", Provinsi: "Sulawesi Tengah", KodePos: "94561",
		Alamat: "Jl. Poros Desa", KepalaDesaNama: "Ahmad Sulaiman",
	}).Error)

	body := getDashboard(t, app)
	profil := body["profilDesa"].(map[string]interface{})
	assert.Equal(t, "Tirongan Atas", profil["namaDesa"])
}
