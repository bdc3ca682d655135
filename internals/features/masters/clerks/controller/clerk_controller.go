package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/clerks/dto"
	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/clerks/model"
	helper "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/helpers"
)

var validateClerk = validator.New()

type ClerkController struct {
	DB *gorm.DB
}

func NewClerkController(db *gorm.DB) *ClerkController {
	return &ClerkController{DB: db}
}

// =======================
// ➕ Create Panitera Pengganti
// =======================
func (ctrl *ClerkController) CreateClerk(c *fiber.Ctx) error {
	var body dto.CreateClerkRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClerk.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	clerk := model.ClerkModel{
		ClerkName:     body.ClerkName,
		ClerkAliases:  body.ClerkAliases,
		ClerkIsActive: true,
		ClerkNote:     body.ClerkNote,
	}
	if body.ClerkIsActive != nil {
		clerk.ClerkIsActive = *body.ClerkIsActive
	}

	if err := ctrl.DB.Create(&clerk).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan panitera pengganti")
	}
	return helper.JsonCreated(c, "Panitera pengganti berhasil ditambahkan", dto.ToClerkDTO(clerk))
}

// =======================
// 📄 Get All Panitera Pengganti
// =======================
func (ctrl *ClerkController) GetAllClerks(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ClerkModel{})
	if c.Query("active") == "true" {
		q = q.Where("clerk_is_active = ?", true)
	}

	var clerks []model.ClerkModel
	if err := q.Order("clerk_name ASC").Find(&clerks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data panitera pengganti")
	}

	resp := make([]dto.ClerkDTO, 0, len(clerks))
	for _, cl := range clerks {
		resp = append(resp, dto.ToClerkDTO(cl))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// ✏️ Update Panitera Pengganti
// =======================
func (ctrl *ClerkController) UpdateClerk(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateClerkRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClerk.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var clerk model.ClerkModel
	if err := ctrl.DB.First(&clerk, "clerk_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Panitera pengganti tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil panitera pengganti")
	}

	if body.ClerkName != nil {
		clerk.ClerkName = *body.ClerkName
	}
	if body.ClerkAliases != nil {
		clerk.ClerkAliases = body.ClerkAliases
	}
	if body.ClerkIsActive != nil {
		clerk.ClerkIsActive = *body.ClerkIsActive
	}
	if body.ClerkNote != nil {
		clerk.ClerkNote = *body.ClerkNote
	}

	if err := ctrl.DB.Save(&clerk).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui panitera pengganti")
	}
	return helper.JsonUpdated(c, "Panitera pengganti berhasil diperbarui", dto.ToClerkDTO(clerk))
}

// =============================
// 🗑️ Delete Panitera Pengganti
// =============================
func (ctrl *ClerkController) DeleteClerk(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	if err := ctrl.DB.Delete(&model.ClerkModel{}, "clerk_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus panitera pengganti")
	}
	return helper.JsonDeleted(c, "Panitera pengganti berhasil dihapus", fiber.Map{"clerk_id": id})
}
