package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/controller"
)

func CaseAdminRoutes(api fiber.Router, db *gorm.DB) {
	caseCtrl := controller.NewCaseController(db)

	cases := api.Group("/cases")
	cases.Post("/", caseCtrl.CreateCase)                  // ➕ Submit + simpan penetapan
	cases.Post("/preview", caseCtrl.PreviewCase)          // 👀 Hitung tanpa simpan
	cases.Get("/", caseCtrl.GetAllCases)                  // 📄 Riwayat penetapan
	cases.Get("/workload", caseCtrl.GetWorkload)          // 📊 Rekap beban
	cases.Get("/by-number/:number", caseCtrl.GetCaseByNumber) // 🔍 Detail by nomor
	cases.Get("/:id", caseCtrl.GetCaseByID)                   // 🔍 Detail by id
	cases.Delete("/:id", caseCtrl.DeleteCase)                 // 🗑️ Koreksi input
}
