package controller_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "github.com/syrlramadhan/desa-tirongan-atas/internals/databases"
	activityModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/activity/model"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/profil/model"
	routes "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/profil/route"
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

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	routes.ProfilDesaRoutes(app.Group("/api"), db)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, sonic.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func profilBody(namaDesa string) map[string]interface{} {
	return map[string]interface{}{
		"namaDesa":       namaDesa,
		"kodeDesa":       "7205082003",
		"kecamatan":      "Dondo",
		"kabupaten":      "Tolitoli",
		"provinsi":       "Sulawesi Tengah",
		"kodePos":        "94561",
		"alamat":         "Jl. Poros Desa",
		"kepalaDesaNama": "Ahmad Sulaiman",
	}
}

func TestGetProfilDesaKosong(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp, body := doJSON(t, app, http.MethodGet, "/api/profil-desa", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Profil desa tidak ditemukan", body["error"])
}

func TestUpsertProfilDesa(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	// PUT pertama membuat baris
	resp, body := doJSON(t, app, http.MethodPut, "/api/profil-desa", profilBody("Tirongan Atas"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Tirongan Atas", body["data"].(map[string]interface{})["namaDesa"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/profil-desa", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tirongan Atas", body["data"].(map[string]interface{})["namaDesa"])

	// PUT kedua memperbarui baris yang sama, bukan menambah
	resp, body = doJSON(t, app, http.MethodPut, "/api/profil-desa", profilBody("Tirongan Atas Baru"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tirongan Atas Baru", body["data"].(map[string]interface{})["namaDesa"])

	var total int64
	require.NoError(t, db.Model(&model.ProfilDesaModel{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)

	var logs int64
	require.NoError(t, db.Model(&activityModel.ActivityLogModel{}).Count(&logs).Error)
	assert.EqualValues(t, 2, logs)
}

func TestUpsertProfilDesaValidasi(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	body := profilBody("Tirongan Atas")
	delete(body, "namaDesa")
	resp, parsed := doJSON(t, app, http.MethodPut, "/api/profil-desa", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, parsed["error"])

	body = profilBody("Tirongan Atas")
	body["email"] = "bukan-email"
	resp, _ = doJSON(t, app, http.MethodPut, "/api/profil-desa", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
