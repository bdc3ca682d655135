package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/users/user/controller"
	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/middlewares"
	authmw "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/middlewares/auth"
)

// AuthPublicRoutes = endpoint tanpa token
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Get("/me", authmw.AuthMiddleware(), authCtrl.Me)
}

// AuthAdminRoutes = manajemen user, dipasang di bawah group admin
func AuthAdminRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	users := api.Group("/users")
	users.Post("/", authCtrl.Register)
	users.Get("/", authCtrl.GetAllUsers)
}
