package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bailiffRoute "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/bailiffs/route"
	clerkRoute "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/clerks/route"
	holidayRoute "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/holidays/route"
	judgeRoute "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/judges/route"
	panelRoute "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/panels/route"
	authmw "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/middlewares/auth"
)

// Master data (hakim, majelis, panitera, jurusita, hari libur).
// Semua perubahan master hanya lewat group admin.
func MasterRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	adminGroup := api.Group("/a",
		authmw.AuthMiddleware(),
		authmw.IsAdmin(),
	)

	judgeRoute.JudgeAdminRoutes(adminGroup, db)
	panelRoute.PanelAdminRoutes(adminGroup, db)
	clerkRoute.ClerkAdminRoutes(adminGroup, db)
	bailiffRoute.BailiffAdminRoutes(adminGroup, db)
	holidayRoute.HolidayAdminRoutes(adminGroup, db)
}
