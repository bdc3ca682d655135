package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	caseRoute "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/route"
	authmw "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/middlewares/auth"
)

// Pendaftaran perkara + penetapan majelis/PP/JS. Login wajib, tidak harus admin.
func CaseRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	staffGroup := api.Group("/u",
		authmw.AuthMiddleware(),
	)

	caseRoute.CaseAdminRoutes(staffGroup, db)
}
