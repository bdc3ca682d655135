package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/clerks/controller"
)

func ClerkAdminRoutes(api fiber.Router, db *gorm.DB) {
	clerkCtrl := controller.NewClerkController(db)

	clerks := api.Group("/clerks")
	clerks.Post("/", clerkCtrl.CreateClerk)
	clerks.Get("/", clerkCtrl.GetAllClerks) // ?active=true
	clerks.Put("/:id", clerkCtrl.UpdateClerk)
	clerks.Delete("/:id", clerkCtrl.DeleteClerk)
}
