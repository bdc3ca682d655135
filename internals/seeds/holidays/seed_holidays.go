package holidays

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/holidays/model"
)

type HolidaySeed struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

func SeedHolidaysFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file hari libur:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []HolidaySeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		parsed, err := time.Parse("2006-01-02", data.Date)
		if err != nil {
			log.Printf("❌ Format tanggal '%s' tidak valid, dilewati.", data.Date)
			continue
		}

		var existing model.HolidayModel
		if err := db.Where("holiday_date = ?", data.Date).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Hari libur '%s' sudah ada, dilewati.", data.Date)
			continue
		}

		holiday := model.HolidayModel{
			HolidayDate:        datatypes.Date(parsed),
			HolidayDescription: data.Description,
		}

		if err := db.Create(&holiday).Error; err != nil {
			log.Printf("❌ Gagal insert hari libur '%s': %v", data.Date, err)
		} else {
			log.Printf("✅ Berhasil insert hari libur '%s'", data.Date)
		}
	}
}
