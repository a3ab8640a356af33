package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDataJSONNil(t *testing.T) {
	raw, err := ValidateDataJSON("domisili", nil)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestValidateDataJSONSkemaDikenal(t *testing.T) {
	data := map[string]interface{}{
		"nama":   "Budi Santoso",
		"nik":    "7205081507800001",
		"alamat": "Dusun I",
	}
	raw, err := ValidateDataJSON("domisili", data)
	require.NoError(t, err)

	var kembali PayloadDomisili
	require.NoError(t, sonic.Unmarshal(raw, &kembali))
	assert.Equal(t, "Budi Santoso", kembali.Nama)
}

func TestValidateDataJSONFieldWajibKosong(t *testing.T) {
	_, err := ValidateDataJSON("domisili", map[string]interface{}{"nama": "Budi"})
	assert.Error(t, err)

	// NIK harus 16 digit
	_, err = ValidateDataJSON("sku", map[string]interface{}{
		"nama":       "Budi",
		"nik":        "123",
		"jenisUsaha": "Perdagangan",
		"namaUsaha":  "Toko Budi",
	})
	assert.Error(t, err)
}

func TestValidateDataJSONPenghasilan(t *testing.T) {
	_, err := ValidateDataJSON("penghasilan", map[string]interface{}{
		"nama":        "Budi",
		"nik":         "7205081507800001",
		"penghasilan": 0,
	})
	assert.Error(t, err, "penghasilan harus > 0")

	raw, err := ValidateDataJSON("penghasilan", map[string]interface{}{
		"nama":        "Budi",
		"nik":         "7205081507800001",
		"penghasilan": 1500000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestValidateDataJSONJenisTanpaSkema(t *testing.T) {
	raw, err := ValidateDataJSON("pengantar-umum", map[string]interface{}{"apapun": true})
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}
