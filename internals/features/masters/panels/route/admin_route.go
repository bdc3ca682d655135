package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/panels/controller"
)

func PanelAdminRoutes(api fiber.Router, db *gorm.DB) {
	panelCtrl := controller.NewPanelController(db)

	panels := api.Group("/panels")
	panels.Post("/", panelCtrl.CreatePanel)
	panels.Get("/", panelCtrl.GetAllPanels) // ?active=true
	panels.Put("/:id", panelCtrl.UpdatePanel)
	panels.Delete("/:id", panelCtrl.DeletePanel)
}
