package seeds

import (
	"gorm.io/gorm"

	holidaySeed "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/seeds/holidays"
	userSeed "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	//* User
	userSeed.SeedAdminUser(db)

	//* Kalender hari libur nasional
	holidaySeed.SeedHolidaysFromJSON(db, "internals/seeds/holidays/data_holidays.json")
}
