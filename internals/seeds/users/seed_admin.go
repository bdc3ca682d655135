package users

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/configs"
	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/users/user/model"
)

// SeedAdminUser membuat akun admin pertama bila belum ada.
// Password diambil dari env ADMIN_PASSWORD.
func SeedAdminUser(db *gorm.DB) {
	userName := configs.GetEnv("ADMIN_USERNAME", "admin")
	password := configs.GetEnv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ℹ️ ADMIN_PASSWORD kosong, seed admin dilewati.")
		return
	}

	var existing model.UserModel
	if err := db.Where("user_name = ?", userName).First(&existing).Error; err == nil {
		log.Printf("ℹ️ User '%s' sudah ada, dilewati.", userName)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Gagal hash password admin: %v", err)
		return
	}

	admin := model.UserModel{
		UserName:     userName,
		UserPassword: string(hash),
		UserRole:     "admin",
		UserIsActive: true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Gagal insert admin '%s': %v", userName, err)
	} else {
		log.Printf("✅ Berhasil insert admin '%s'", userName)
	}
}
