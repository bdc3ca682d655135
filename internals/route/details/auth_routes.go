package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/users/user/route"
	authmw "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 🔓 login dsb.
	userRoute.AuthPublicRoutes(api, db)

	// 🔐 manajemen user hanya admin
	adminGroup := api.Group("/a",
		authmw.AuthMiddleware(),
		authmw.IsAdmin(),
	)
	userRoute.AuthAdminRoutes(adminGroup, db)
}
