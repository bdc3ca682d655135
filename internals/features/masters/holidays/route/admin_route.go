package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/holidays/controller"
)

func HolidayAdminRoutes(api fiber.Router, db *gorm.DB) {
	holidayCtrl := controller.NewHolidayController(db)

	holidays := api.Group("/holidays")
	holidays.Post("/", holidayCtrl.CreateHoliday)
	holidays.Get("/", holidayCtrl.GetAllHolidays) // ?year=2025
	holidays.Put("/:id", holidayCtrl.UpdateHoliday)
	holidays.Delete("/:id", holidayCtrl.DeleteHoliday)
}
