package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/panels/dto"
	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/panels/model"
	helper "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/helpers"
)

var validatePanel = validator.New()

type PanelController struct {
	DB *gorm.DB
}

func NewPanelController(db *gorm.DB) *PanelController {
	return &PanelController{DB: db}
}

// =======================
// ➕ Create SK Majelis
// =======================
func (ctrl *PanelController) CreatePanel(c *fiber.Ctx) error {
	var body dto.CreatePanelRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePanel.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	panel := model.PanelModel{
		PanelChamberIndex:   body.PanelChamberIndex,
		PanelChamberLabel:   body.PanelChamberLabel,
		PanelPresidingName:  body.PanelPresidingName,
		PanelAssociate1Name: body.PanelAssociate1Name,
		PanelAssociate2Name: body.PanelAssociate2Name,
		PanelClerkPool:      body.PanelClerkPool,
		PanelBailiffPool:    body.PanelBailiffPool,
		PanelIsActive:       true,
	}
	if body.PanelIsActive != nil {
		panel.PanelIsActive = *body.PanelIsActive
	}

	if err := ctrl.DB.Create(&panel).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan SK majelis")
	}
	return helper.JsonCreated(c, "SK majelis berhasil ditambahkan", dto.ToPanelDTO(panel))
}

// =======================
// 📄 Get All SK Majelis
// =======================
func (ctrl *PanelController) GetAllPanels(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.PanelModel{})
	if c.Query("active") == "true" {
		q = q.Where("panel_is_active = ?", true)
	}

	var panels []model.PanelModel
	if err := q.Order("panel_chamber_index ASC, panel_chamber_label ASC").Find(&panels).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil SK majelis")
	}

	resp := make([]dto.PanelDTO, 0, len(panels))
	for _, p := range panels {
		resp = append(resp, dto.ToPanelDTO(p))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// ✏️ Update SK Majelis
// =======================
func (ctrl *PanelController) UpdatePanel(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdatePanelRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePanel.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var panel model.PanelModel
	if err := ctrl.DB.First(&panel, "panel_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "SK majelis tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil SK majelis")
	}

	if body.PanelChamberIndex != nil {
		panel.PanelChamberIndex = *body.PanelChamberIndex
	}
	if body.PanelChamberLabel != nil {
		panel.PanelChamberLabel = *body.PanelChamberLabel
	}
	if body.PanelPresidingName != nil {
		panel.PanelPresidingName = *body.PanelPresidingName
	}
	if body.PanelAssociate1Name != nil {
		panel.PanelAssociate1Name = *body.PanelAssociate1Name
	}
	if body.PanelAssociate2Name != nil {
		panel.PanelAssociate2Name = *body.PanelAssociate2Name
	}
	if body.PanelClerkPool != nil {
		panel.PanelClerkPool = body.PanelClerkPool
	}
	if body.PanelBailiffPool != nil {
		panel.PanelBailiffPool = body.PanelBailiffPool
	}
	if body.PanelIsActive != nil {
		panel.PanelIsActive = *body.PanelIsActive
	}

	if err := ctrl.DB.Save(&panel).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui SK majelis")
	}
	return helper.JsonUpdated(c, "SK majelis berhasil diperbarui", dto.ToPanelDTO(panel))
}

// =============================
// 🗑️ Delete SK Majelis
// =============================
func (ctrl *PanelController) DeletePanel(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	if err := ctrl.DB.Delete(&model.PanelModel{}, "panel_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus SK majelis")
	}
	return helper.JsonDeleted(c, "SK majelis berhasil dihapus", fiber.Map{"panel_id": id})
}
