// internals/seeds/desa_seed.go
package seeds

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/constants"
	keluargaModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/keluarga/model"
	pendudukModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/model"
	profilModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/profil/model"
	wilayahModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/wilayah/model"
)

// SeedProfilDesa mengisi baris profil kalau tabel masih kosong.
func SeedProfilDesa(db *gorm.DB) error {
	var count int64
	if err := db.Model(&profilModel.ProfilDesaModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	row := profilModel.ProfilDesaModel{
		NamaDesa:       "Tirongan Atas",
		KodeDesa:       "7205082003",
		Kecamatan:      "Dondo",
		Kabupaten:      "Tolitoli",
		Provinsi:       "Sulawesi Tengah",
		KodePos:        "94561",
		Alamat:         "Jl. Poros Desa Tirongan Atas",
		KepalaDesaNama: "Ahmad Sulaiman",
	}
	if err := db.Create(&row).Error; err != nil {
		return err
	}
	log.Println("[SEED] profil desa dibuat")
	return nil
}

// SeedWilayah membuat 4 dusun, masing-masing 2 RW dengan 2 RT.
func SeedWilayah(db *gorm.DB) error {
	var count int64
	if err := db.Model(&wilayahModel.DusunModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	namaDusun := []string{"Dusun I", "Dusun II", "Dusun III", "Dusun IV"}
	for i, nama := range namaDusun {
		kode := fmt.Sprintf("D%02d", i+1)
		dusun := wilayahModel.DusunModel{Nama: nama, Kode: &kode}
		if err := db.Create(&dusun).Error; err != nil {
			return err
		}
		for rwIdx := 1; rwIdx <= 2; rwIdx++ {
			rw := wilayahModel.RWModel{
				Nama:    fmt.Sprintf("RW %02d", rwIdx),
				Nomor:   fmt.Sprintf("%02d", rwIdx),
				DusunID: dusun.ID,
			}
			if err := db.Create(&rw).Error; err != nil {
				return err
			}
			for rtIdx := 1; rtIdx <= 2; rtIdx++ {
				rt := wilayahModel.RTModel{
					Nama:  fmt.Sprintf("RT %02d", rtIdx),
					Nomor: fmt.Sprintf("%02d", rtIdx),
					RWID:  rw.ID,
				}
				if err := db.Create(&rt).Error; err != nil {
					return err
				}
			}
		}
	}
	log.Println("[SEED] wilayah dibuat (4 dusun, 8 RW, 16 RT)")
	return nil
}

// SeedKependudukan membuat keluarga contoh beserta anggotanya.
func SeedKependudukan(db *gorm.DB) error {
	var count int64
	if err := db.Model(&keluargaModel.KeluargaModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var dusunList []wilayahModel.DusunModel
	if err := db.Order("id ASC").Find(&dusunList).Error; err != nil {
		return err
	}
	dusunID := func(i int) *uint {
		if len(dusunList) == 0 {
			return nil
		}
		id := dusunList[i%len(dusunList)].ID
		return &id
	}

	type anggota struct {
		NIK            string
		Nama           string
		TempatLahir    string
		TanggalLahir   string
		JenisKelamin   string
		Agama          string
		StatusKawin    string
		Pekerjaan      string
		Pendidikan     string
		StatusKeluarga string
	}
	type kk struct {
		NoKK    string
		Kepala  string
		Alamat  string
		RT      string
		RW      string
		Anggota []anggota
	}

	data := []kk{
		{
			NoKK: "7205082003200001", Kepala: "Budi Santoso", Alamat: "Dusun I, Tirongan Atas", RT: "01", RW: "01",
			Anggota: []anggota{
				{"7205081507800001", "Budi Santoso", "Tolitoli", "1980-07-15", constants.JenisKelaminLakiLaki, "Islam", "Kawin", "Petani", "SMA", "Kepala Keluarga"},
				{"7205084504850002", "Siti Aminah", "Tolitoli", "1985-04-05", constants.JenisKelaminPerempuan, "Islam", "Kawin", "Ibu Rumah Tangga", "SMP", "Istri"},
				{"7205081201100003", "Andi Santoso", "Tolitoli", "2010-01-12", constants.JenisKelaminLakiLaki, "Islam", "Belum Kawin", "Pelajar", "SD", "Anak"},
			},
		},
		{
			NoKK: "7205082003200002", Kepala: "Hasan Basri", Alamat: "Dusun II, Tirongan Atas", RT: "02", RW: "01",
			Anggota: []anggota{
				{"7205082208750004", "Hasan Basri", "Dondo", "1975-08-22", constants.JenisKelaminLakiLaki, "Islam", "Kawin", "Nelayan", "SD", "Kepala Keluarga"},
				{"7205086009780005", "Nurhayati", "Dondo", "1978-09-20", constants.JenisKelaminPerempuan, "Islam", "Kawin", "Pedagang", "SD", "Istri"},
			},
		},
		{
			NoKK: "7205082003200003", Kepala: "Yusuf Rahman", Alamat: "Dusun III, Tirongan Atas", RT: "01", RW: "02",
			Anggota: []anggota{
				{"7205080303900006", "Yusuf Rahman", "Palu", "1990-03-03", constants.JenisKelaminLakiLaki, "Islam", "Kawin", "Guru", "S1", "Kepala Keluarga"},
				{"7205085106920007", "Fitriani", "Palu", "1992-06-11", constants.JenisKelaminPerempuan, "Islam", "Kawin", "Guru", "S1", "Istri"},
			},
		},
		{
			NoKK: "7205082003200004", Kepala: "Made Wirawan", Alamat: "Dusun IV, Tirongan Atas", RT: "02", RW: "02",
			Anggota: []anggota{
				{"7205081010650008", "Made Wirawan", "Singaraja", "1965-10-10", constants.JenisKelaminLakiLaki, "Hindu", "Kawin", "Petani", "SMP", "Kepala Keluarga"},
				{"7205084412680009", "Kadek Sri", "Singaraja", "1968-12-04", constants.JenisKelaminPerempuan, "Hindu", "Kawin", "Petani", "SD", "Istri"},
			},
		},
		{
			NoKK: "7205082003200005", Kepala: "Maria Tandi", Alamat: "Dusun I, Tirongan Atas", RT: "02", RW: "01",
			Anggota: []anggota{
				{"7205085505700010", "Maria Tandi", "Toraja", "1970-05-15", constants.JenisKelaminPerempuan, "Kristen", "Cerai Mati", "Pedagang", "SMA", "Kepala Keluarga"},
			},
		},
	}

	for i, k := range data {
		keluarga := keluargaModel.KeluargaModel{
			NoKK:           k.NoKK,
			KepalaKeluarga: k.Kepala,
			Alamat:         k.Alamat,
			RT:             k.RT,
			RW:             k.RW,
			DusunID:        dusunID(i),
		}
		if err := db.Create(&keluarga).Error; err != nil {
			return err
		}
		for _, a := range k.Anggota {
			lahir, err := time.Parse("2006-01-02", a.TanggalLahir)
			if err != nil {
				return err
			}
			statusKeluarga := a.StatusKeluarga
			p := pendudukModel.PendudukModel{
				NIK:              a.NIK,
				Nama:             a.Nama,
				TempatLahir:      a.TempatLahir,
				TanggalLahir:     lahir,
				JenisKelamin:     a.JenisKelamin,
				Agama:            a.Agama,
				StatusPerkawinan: a.StatusKawin,
				Pekerjaan:        a.Pekerjaan,
				Pendidikan:       a.Pendidikan,
				Kewarganegaraan:  "WNI",
				Alamat:           k.Alamat,
				RT:               k.RT,
				RW:               k.RW,
				KeluargaID:       &keluarga.ID,
				StatusKeluarga:   &statusKeluarga,
			}
			if err := db.Create(&p).Error; err != nil {
				return err
			}
		}
	}
	log.Println("[SEED] keluarga dan penduduk contoh dibuat")
	return nil
}
