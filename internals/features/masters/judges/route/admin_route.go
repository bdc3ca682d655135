package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/judges/controller"
)

func JudgeAdminRoutes(api fiber.Router, db *gorm.DB) {
	judgeCtrl := controller.NewJudgeController(db)

	judges := api.Group("/judges")
	judges.Post("/", judgeCtrl.CreateJudge)
	judges.Get("/", judgeCtrl.GetAllJudges) // ?active=true
	judges.Put("/:id", judgeCtrl.UpdateJudge)
	judges.Delete("/:id", judgeCtrl.DeleteJudge)
}
