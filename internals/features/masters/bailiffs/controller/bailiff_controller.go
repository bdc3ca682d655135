package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/bailiffs/dto"
	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/bailiffs/model"
	helper "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/helpers"
)

var validateBailiff = validator.New()

type BailiffController struct {
	DB *gorm.DB
}

func NewBailiffController(db *gorm.DB) *BailiffController {
	return &BailiffController{DB: db}
}

// =======================
// ➕ Create Jurusita
// =======================
func (ctrl *BailiffController) CreateBailiff(c *fiber.Ctx) error {
	var body dto.CreateBailiffRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBailiff.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	bailiff := model.BailiffModel{
		BailiffName:     body.BailiffName,
		BailiffAliases:  body.BailiffAliases,
		BailiffIsActive: true,
		BailiffNote:     body.BailiffNote,
	}
	if body.BailiffIsActive != nil {
		bailiff.BailiffIsActive = *body.BailiffIsActive
	}

	if err := ctrl.DB.Create(&bailiff).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jurusita")
	}
	return helper.JsonCreated(c, "Jurusita berhasil ditambahkan", dto.ToBailiffDTO(bailiff))
}

// =======================
// 📄 Get All Jurusita
// =======================
func (ctrl *BailiffController) GetAllBailiffs(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.BailiffModel{})
	if c.Query("active") == "true" {
		q = q.Where("bailiff_is_active = ?", true)
	}

	var bailiffs []model.BailiffModel
	if err := q.Order("bailiff_name ASC").Find(&bailiffs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jurusita")
	}

	resp := make([]dto.BailiffDTO, 0, len(bailiffs))
	for _, b := range bailiffs {
		resp = append(resp, dto.ToBailiffDTO(b))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// ✏️ Update Jurusita
// =======================
func (ctrl *BailiffController) UpdateBailiff(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateBailiffRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBailiff.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var bailiff model.BailiffModel
	if err := ctrl.DB.First(&bailiff, "bailiff_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jurusita tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jurusita")
	}

	if body.BailiffName != nil {
		bailiff.BailiffName = *body.BailiffName
	}
	if body.BailiffAliases != nil {
		bailiff.BailiffAliases = body.BailiffAliases
	}
	if body.BailiffIsActive != nil {
		bailiff.BailiffIsActive = *body.BailiffIsActive
	}
	if body.BailiffNote != nil {
		bailiff.BailiffNote = *body.BailiffNote
	}

	if err := ctrl.DB.Save(&bailiff).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jurusita")
	}
	return helper.JsonUpdated(c, "Jurusita berhasil diperbarui", dto.ToBailiffDTO(bailiff))
}

// =============================
// 🗑️ Delete Jurusita
// =============================
func (ctrl *BailiffController) DeleteBailiff(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	if err := ctrl.DB.Delete(&model.BailiffModel{}, "bailiff_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jurusita")
	}
	return helper.JsonDeleted(c, "Jurusita berhasil dihapus", fiber.Map{"bailiff_id": id})
}
