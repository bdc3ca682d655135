package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/model"
	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/service"
	helper "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/helpers"
)

// =======================
// 📊 Rekap beban per peran
// Query: ?role=judge|associate|clerk|bailiff (&category=ghoib dst.)
// =======================
func (ctrl *CaseController) GetWorkload(c *fiber.Ctx) error {
	role := c.Query("role", "judge")
	col, ok := roleColumnOf(role)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "role harus judge/associate/clerk/bailiff")
	}

	snap, err := service.LoadSnapshot(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load snapshot: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat riwayat")
	}

	history := snap.History
	if cat := c.Query("category"); cat != "" {
		history = service.FilterByCategory(history, model.ProcessCategory(cat))
	}

	return helper.JsonOK(c, "Rekap beban", fiber.Map{
		"role":  role,
		"loads": service.CountLoads(history, col),
	})
}

func roleColumnOf(role string) (service.RoleColumn, bool) {
	switch role {
	case "judge":
		return service.RoleJudge, true
	case "associate":
		return service.RoleAssociate, true
	case "clerk":
		return service.RoleClerk, true
	case "bailiff":
		return service.RoleBailiff, true
	}
	return 0, false
}
