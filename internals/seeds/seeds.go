// internals/seeds/seeds.go
package seeds

import (
	"gorm.io/gorm"
)

// RunAllSeeds menjalankan seluruh seeder secara berurutan.
// Setiap seeder idempoten, jadi aman dipanggil berkali-kali.
func RunAllSeeds(db *gorm.DB) error {
	steps := []func(*gorm.DB) error{
		SeedUsers,
		SeedProfilDesa,
		SeedWilayah,
		SeedKependudukan,
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}
	return nil
}
