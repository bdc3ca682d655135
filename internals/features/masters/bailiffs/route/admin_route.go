package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/bailiffs/controller"
)

func BailiffAdminRoutes(api fiber.Router, db *gorm.DB) {
	bailiffCtrl := controller.NewBailiffController(db)
	ghoibCtrl := controller.NewGhoibBailiffController(db)

	bailiffs := api.Group("/bailiffs")
	bailiffs.Post("/", bailiffCtrl.CreateBailiff)
	bailiffs.Get("/", bailiffCtrl.GetAllBailiffs) // ?active=true
	bailiffs.Put("/:id", bailiffCtrl.UpdateBailiff)
	bailiffs.Delete("/:id", bailiffCtrl.DeleteBailiff)

	ghoib := api.Group("/ghoib-bailiffs")
	ghoib.Post("/", ghoibCtrl.CreateGhoibBailiff)
	ghoib.Get("/", ghoibCtrl.GetAllGhoibBailiffs) // ?active=true
	ghoib.Put("/:id", ghoibCtrl.UpdateGhoibBailiff)
	ghoib.Delete("/:id", ghoibCtrl.DeleteGhoibBailiff)
}
