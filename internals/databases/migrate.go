package database

import (
	"log"

	caseModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/model"
	bailiffModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/bailiffs/model"
	clerkModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/clerks/model"
	holidayModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/holidays/model"
	judgeModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/judges/model"
	panelModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/panels/model"
	userModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/users/user/model"
)

// MigrateAll menjalankan AutoMigrate seluruh tabel.
// Dipanggil opsional lewat env RUN_MIGRATIONS=true; di production
// perubahan skema tetap lewat SQL yang direview.
func MigrateAll() {
	log.Println("🏗️ AutoMigrate skema...")
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&judgeModel.JudgeModel{},
		&panelModel.PanelModel{},
		&clerkModel.ClerkModel{},
		&bailiffModel.BailiffModel{},
		&bailiffModel.GhoibBailiffModel{},
		&holidayModel.HolidayModel{},
		&caseModel.CaseModel{},
		&caseModel.RotationCursorModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
