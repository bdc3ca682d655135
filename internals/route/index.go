package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== MASTER DATA =====================
	log.Println("[INFO] Mounting Master routes...")
	routeDetails.MasterRoutes(app, db)

	// ===================== PERKARA =====================
	log.Println("[INFO] Mounting Case routes...")
	routeDetails.CaseRoutes(app, db)
}
