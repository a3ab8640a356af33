package controller_test

import (
	"bytes"
	"fmt"
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
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/model"
	routes "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/route"
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
	routes.PendudukRoutes(app.Group("/api"), db)
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

func pendudukBody(nik, nama string) map[string]interface{} {
	return map[string]interface{}{
		"nik":              nik,
		"nama":             nama,
		"tempatLahir":      "Tolitoli",
		"tanggalLahir":     "1990-01-01",
		"jenisKelamin":     "L",
		"agama":            "Islam",
		"statusPerkawinan": "Kawin",
		"pekerjaan":        "Petani",
		"pendidikan":       "SMA",
		"alamat":           "Dusun I",
		"rt":               "01",
		"rw":               "01",
	}
}

func TestCreatePenduduk(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp, body := doJSON(t, app, http.MethodPost, "/api/penduduk", pendudukBody("1111222233334444", "Budi Santoso"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Budi Santoso", data["nama"])
	assert.Equal(t, "WNI", data["kewarganegaraan"])

	// tulisan utama dan activity log masuk bersama
	var logs int64
	require.NoError(t, db.Model(&activityModel.ActivityLogModel{}).Count(&logs).Error)
	assert.EqualValues(t, 1, logs)
}

func TestCreatePendudukNIKDuplikat(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/penduduk", pendudukBody("1111222233334444", "Budi Santoso"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/penduduk", pendudukBody("1111222233334444", "Orang Lain"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "NIK sudah terdaftar", body["error"])

	var total int64
	require.NoError(t, db.Model(&model.PendudukModel{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestCreatePendudukValidasi(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	body := pendudukBody("123", "Budi") // NIK bukan 16 digit
	resp, parsed := doJSON(t, app, http.MethodPost, "/api/penduduk", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, parsed["error"])

	body = pendudukBody("1111222233334444", "Budi")
	body["jenisKelamin"] = "X"
	resp, _ = doJSON(t, app, http.MethodPost, "/api/penduduk", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListPendudukPagination(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	for i := 0; i < 12; i++ {
		nik := fmt.Sprintf("11112222333344%02d", i)
		resp, _ := doJSON(t, app, http.MethodPost, "/api/penduduk", pendudukBody(nik, fmt.Sprintf("Warga %02d", i)))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/penduduk?page=2&limit=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := body["penduduk"].([]interface{})
	assert.Len(t, items, 5)

	pagination := body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 2, pagination["page"])
	assert.EqualValues(t, 12, pagination["total"])
	assert.EqualValues(t, 3, pagination["totalPages"])

	// tanpa tulisan di antaranya, halaman yang sama identik saat diminta ulang
	resp, ulang := doJSON(t, app, http.MethodGet, "/api/penduduk?page=2&limit=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, body["penduduk"], ulang["penduduk"])
	assert.Equal(t, body["pagination"], ulang["pagination"])

	// halaman terakhir berisi sisanya
	resp, body = doJSON(t, app, http.MethodGet, "/api/penduduk?page=3&limit=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["penduduk"].([]interface{}), 2)
}

func TestListPendudukSearchDanStats(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/penduduk", pendudukBody("1111222233330001", "Budi Santoso"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	perempuan := pendudukBody("1111222233330002", "Siti Aminah")
	perempuan["jenisKelamin"] = "P"
	resp, _ = doJSON(t, app, http.MethodPost, "/api/penduduk", perempuan)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/penduduk?search=Santoso", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["penduduk"].([]interface{}), 1)

	// stats selalu dihitung atas seluruh tabel, terfilter atau tidak
	stats := body["stats"].(map[string]interface{})
	assert.EqualValues(t, 2, stats["total"])
	assert.EqualValues(t, 1, stats["lakiLaki"])
	assert.EqualValues(t, 1, stats["perempuan"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/penduduk?jenisKelamin=P", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["penduduk"].([]interface{}), 1)
	assert.EqualValues(t, 2, body["stats"].(map[string]interface{})["total"])
}

// LIKE di sqlite tidak peka kapital untuk ASCII; pencarian dengan
// huruf kecil tetap menemukan nama berkapital.
func TestListPendudukSearchAbaikanKapital(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/penduduk", pendudukBody("1111222233330001", "Ahmad Sudirman"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/penduduk?search=sudirman", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := body["penduduk"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Ahmad Sudirman", items[0].(map[string]interface{})["nama"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/penduduk?search=SUDIRMAN", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["penduduk"].([]interface{}), 1)
}

func TestUpdatePenduduk(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp, body := doJSON(t, app, http.MethodPost, "/api/penduduk", pendudukBody("1111222233334444", "Budi Santoso"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["data"].(map[string]interface{})["id"].(float64)

	resp, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/penduduk/%.0f", id),
		map[string]interface{}{"pekerjaan": "Pedagang"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Pedagang", data["pekerjaan"])
	assert.Equal(t, "Budi Santoso", data["nama"]) // field lain tidak tersentuh

	resp, body = doJSON(t, app, http.MethodPut, "/api/penduduk/9999",
		map[string]interface{}{"pekerjaan": "Pedagang"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Penduduk tidak ditemukan", body["error"])
}

func TestDeletePenduduk(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp, body := doJSON(t, app, http.MethodPost, "/api/penduduk", pendudukBody("1111222233334444", "Budi Santoso"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["data"].(map[string]interface{})["id"].(float64)

	resp, body = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/penduduk/%.0f", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Penduduk berhasil dihapus", body["message"])

	var total int64
	require.NoError(t, db.Model(&model.PendudukModel{}).Count(&total).Error)
	assert.EqualValues(t, 0, total)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/penduduk/%.0f", id), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetPendudukDetail(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp, body := doJSON(t, app, http.MethodPost, "/api/penduduk", pendudukBody("1111222233334444", "Budi Santoso"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["data"].(map[string]interface{})["id"].(float64)

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/penduduk/%.0f", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Budi Santoso", data["nama"])
	_, adaSurat := data["suratList"]
	assert.True(t, adaSurat)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/penduduk/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
