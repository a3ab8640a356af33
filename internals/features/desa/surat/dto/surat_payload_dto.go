// internals/features/desa/surat/dto/surat_payload_dto.go
//
// Tiap jenis surat punya skema field tambahan sendiri (isi dataJson).
// Jenis yang dikenal divalidasi terhadap struct-nya sebelum disimpan;
// jenis lain (mis. template pengantar bebas) diterima apa adanya.
package dto

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

var validatePayload = validator.New()

// Surat Keterangan Usaha
type PayloadSKU struct {
	Nama         string `json:"nama" validate:"required"`
	NIK          string `json:"nik" validate:"required,len=16,numeric"`
	TempatLahir  string `json:"tempatLahir" validate:"omitempty"`
	TanggalLahir string `json:"tanggalLahir" validate:"omitempty,datetime=2006-01-02"`
	JenisKelamin string `json:"jenisKelamin" validate:"omitempty"`
	Agama        string `json:"agama" validate:"omitempty"`
	Pekerjaan    string `json:"pekerjaan" validate:"omitempty"`
	Alamat       string `json:"alamat" validate:"omitempty"`
	JenisUsaha   string `json:"jenisUsaha" validate:"required"`
	NamaUsaha    string `json:"namaUsaha" validate:"required"`
	AlamatUsaha  string `json:"alamatUsaha" validate:"omitempty"`
	Keperluan    string `json:"keperluan" validate:"omitempty"`
}

// Surat Keterangan Domisili
type PayloadDomisili struct {
	Nama         string `json:"nama" validate:"required"`
	NIK          string `json:"nik" validate:"required,len=16,numeric"`
	TempatLahir  string `json:"tempatLahir" validate:"omitempty"`
	TanggalLahir string `json:"tanggalLahir" validate:"omitempty,datetime=2006-01-02"`
	JenisKelamin string `json:"jenisKelamin" validate:"omitempty"`
	Agama        string `json:"agama" validate:"omitempty"`
	Pekerjaan    string `json:"pekerjaan" validate:"omitempty"`
	Alamat       string `json:"alamat" validate:"required"`
	RT           string `json:"rt" validate:"omitempty"`
	RW           string `json:"rw" validate:"omitempty"`
	Keperluan    string `json:"keperluan" validate:"omitempty"`
}

// Surat Keterangan Penghasilan
type PayloadPenghasilan struct {
	Nama         string  `json:"nama" validate:"required"`
	NIK          string  `json:"nik" validate:"required,len=16,numeric"`
	TempatLahir  string  `json:"tempatLahir" validate:"omitempty"`
	TanggalLahir string  `json:"tanggalLahir" validate:"omitempty,datetime=2006-01-02"`
	JenisKelamin string  `json:"jenisKelamin" validate:"omitempty"`
	Pekerjaan    string  `json:"pekerjaan" validate:"omitempty"`
	Alamat       string  `json:"alamat" validate:"omitempty"`
	Penghasilan  float64 `json:"penghasilan" validate:"required,gt=0"`
	Keperluan    string  `json:"keperluan" validate:"omitempty"`
}

// Surat Keterangan Tidak Mampu
type PayloadTidakMampu struct {
	Nama         string `json:"nama" validate:"required"`
	NIK          string `json:"nik" validate:"required,len=16,numeric"`
	TempatLahir  string `json:"tempatLahir" validate:"omitempty"`
	TanggalLahir string `json:"tanggalLahir" validate:"omitempty,datetime=2006-01-02"`
	JenisKelamin string `json:"jenisKelamin" validate:"omitempty"`
	Agama        string `json:"agama" validate:"omitempty"`
	Pekerjaan    string `json:"pekerjaan" validate:"omitempty"`
	Alamat       string `json:"alamat" validate:"omitempty"`
	NamaOrangTua string `json:"namaOrangTua" validate:"omitempty"`
	Keperluan    string `json:"keperluan" validate:"omitempty"`
}

// Surat Keterangan Kehilangan
type PayloadKehilangan struct {
	Nama             string `json:"nama" validate:"required"`
	NIK              string `json:"nik" validate:"required,len=16,numeric"`
	TempatLahir      string `json:"tempatLahir" validate:"omitempty"`
	TanggalLahir     string `json:"tanggalLahir" validate:"omitempty,datetime=2006-01-02"`
	JenisKelamin     string `json:"jenisKelamin" validate:"omitempty"`
	Alamat           string `json:"alamat" validate:"omitempty"`
	BarangHilang     string `json:"barangHilang" validate:"required"`
	TempatKehilangan string `json:"tempatKehilangan" validate:"omitempty"`
	WaktuKehilangan  string `json:"waktuKehilangan" validate:"omitempty"`
	Keterangan       string `json:"keterangan" validate:"omitempty"`
}

// Surat Keterangan Belum Pernah Menikah
type PayloadBelumPernah struct {
	Nama         string `json:"nama" validate:"required"`
	NIK          string `json:"nik" validate:"required,len=16,numeric"`
	TempatLahir  string `json:"tempatLahir" validate:"omitempty"`
	TanggalLahir string `json:"tanggalLahir" validate:"omitempty,datetime=2006-01-02"`
	JenisKelamin string `json:"jenisKelamin" validate:"omitempty"`
	Agama        string `json:"agama" validate:"omitempty"`
	Pekerjaan    string `json:"pekerjaan" validate:"omitempty"`
	Alamat       string `json:"alamat" validate:"omitempty"`
	Keperluan    string `json:"keperluan" validate:"omitempty"`
}

// Surat Keterangan Beda Nama
type PayloadBedaNama struct {
	NamaKTP      string `json:"namaKTP" validate:"required"`
	NamaIjazah   string `json:"namaIjazah" validate:"required"`
	NIK          string `json:"nik" validate:"required,len=16,numeric"`
	TempatLahir  string `json:"tempatLahir" validate:"omitempty"`
	TanggalLahir string `json:"tanggalLahir" validate:"omitempty,datetime=2006-01-02"`
	JenisKelamin string `json:"jenisKelamin" validate:"omitempty"`
	Alamat       string `json:"alamat" validate:"omitempty"`
	Alasan       string `json:"alasan" validate:"omitempty"`
	Keperluan    string `json:"keperluan" validate:"omitempty"`
}

// Surat Keterangan Pindah Sementara
type PayloadPindahSementara struct {
	Nama         string `json:"nama" validate:"required"`
	NIK          string `json:"nik" validate:"required,len=16,numeric"`
	TempatLahir  string `json:"tempatLahir" validate:"omitempty"`
	TanggalLahir string `json:"tanggalLahir" validate:"omitempty,datetime=2006-01-02"`
	JenisKelamin string `json:"jenisKelamin" validate:"omitempty"`
	AlamatAsal   string `json:"alamatAsal" validate:"required"`
	AlamatTujuan string `json:"alamatTujuan" validate:"required"`
	AlasanPindah string `json:"alasanPindah" validate:"omitempty"`
	LamaWaktu    int    `json:"lamaWaktu" validate:"omitempty,gt=0"`
}

// Surat Keterangan Izin Keramaian
type PayloadIzinKeramaian struct {
	NamaPemohon  string `json:"namaPemohon" validate:"required"`
	NIK          string `json:"nik" validate:"required,len=16,numeric"`
	Alamat       string `json:"alamat" validate:"omitempty"`
	NamaAcara    string `json:"namaAcara" validate:"required"`
	TempatAcara  string `json:"tempatAcara" validate:"omitempty"`
	TanggalAcara string `json:"tanggalAcara" validate:"omitempty,datetime=2006-01-02"`
	WaktuMulai   string `json:"waktuMulai" validate:"omitempty"`
	WaktuSelesai string `json:"waktuSelesai" validate:"omitempty"`
	JumlahTamu   int    `json:"jumlahTamu" validate:"omitempty,gt=0"`
}

var payloadSchemas = map[string]func() interface{}{
	"sku":              func() interface{} { return &PayloadSKU{} },
	"domisili":         func() interface{} { return &PayloadDomisili{} },
	"penghasilan":      func() interface{} { return &PayloadPenghasilan{} },
	"tidak-mampu":      func() interface{} { return &PayloadTidakMampu{} },
	"kehilangan":       func() interface{} { return &PayloadKehilangan{} },
	"belum-pernah":     func() interface{} { return &PayloadBelumPernah{} },
	"beda-nama":        func() interface{} { return &PayloadBedaNama{} },
	"pindah-sementara": func() interface{} { return &PayloadPindahSementara{} },
	"izin-keramaian":   func() interface{} { return &PayloadIzinKeramaian{} },
}

// ValidateDataJSON memvalidasi dataJson terhadap skema jenis surat
// lalu mengembalikan encoding JSON-nya. dataJson nil menghasilkan nil.
func ValidateDataJSON(jenisSurat string, data map[string]interface{}) ([]byte, error) {
	if data == nil {
		return nil, nil
	}

	raw, err := sonic.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("dataJson tidak bisa di-encode: %w", err)
	}

	newSchema, known := payloadSchemas[jenisSurat]
	if !known {
		// jenis tanpa skema tetap diterima apa adanya
		return raw, nil
	}

	payload := newSchema()
	if err := sonic.Unmarshal(raw, payload); err != nil {
		return nil, fmt.Errorf("dataJson tidak sesuai skema %s: %w", jenisSurat, err)
	}
	if err := validatePayload.Struct(payload); err != nil {
		return nil, err
	}
	return raw, nil
}
