package constants

// Jenis kelamin penduduk
const (
	JenisKelaminLakiLaki  = "L"
	JenisKelaminPerempuan = "P"
)

// Status surat
const (
	StatusSuratPending = "pending"
	StatusSuratProses  = "proses"
	StatusSuratSelesai = "selesai"
)

// Kategori surat
const (
	KategoriKeterangan = "keterangan"
	KategoriPengantar  = "pengantar"
)

// Aksi activity log
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Entity type untuk activity log
const (
	EntityPenduduk   = "penduduk"
	EntityKeluarga   = "keluarga"
	EntitySurat      = "surat"
	EntityDusun      = "dusun"
	EntityRW         = "rw"
	EntityRT         = "rt"
	EntityProfilDesa = "profil_desa"
)
