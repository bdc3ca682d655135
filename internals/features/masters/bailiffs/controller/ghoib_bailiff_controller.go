package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/bailiffs/dto"
	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/bailiffs/model"
	helper "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/helpers"
)

// Pool jurusita khusus relaas ghoib. Counter dipakai untuk urutan giliran
// sehingga tidak di-reset saat update profil.
type GhoibBailiffController struct {
	DB *gorm.DB
}

func NewGhoibBailiffController(db *gorm.DB) *GhoibBailiffController {
	return &GhoibBailiffController{DB: db}
}

// =======================
// ➕ Create
// =======================
func (ctrl *GhoibBailiffController) CreateGhoibBailiff(c *fiber.Ctx) error {
	var body dto.CreateGhoibBailiffRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBailiff.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	gb := model.GhoibBailiffModel{
		GhoibBailiffName:     body.GhoibBailiffName,
		GhoibBailiffIsActive: true,
	}
	if body.GhoibBailiffCounter != nil {
		gb.GhoibBailiffCounter = *body.GhoibBailiffCounter
	}
	if body.GhoibBailiffIsActive != nil {
		gb.GhoibBailiffIsActive = *body.GhoibBailiffIsActive
	}

	if err := ctrl.DB.Create(&gb).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jurusita ghoib")
	}
	return helper.JsonCreated(c, "Jurusita ghoib berhasil ditambahkan", dto.ToGhoibBailiffDTO(gb))
}

// =======================
// 📄 Get All
// =======================
func (ctrl *GhoibBailiffController) GetAllGhoibBailiffs(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.GhoibBailiffModel{})
	if c.Query("active") == "true" {
		q = q.Where("ghoib_bailiff_is_active = ?", true)
	}

	var rows []model.GhoibBailiffModel
	if err := q.Order("ghoib_bailiff_counter ASC, ghoib_bailiff_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jurusita ghoib")
	}

	resp := make([]dto.GhoibBailiffDTO, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.ToGhoibBailiffDTO(r))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// ✏️ Update
// =======================
func (ctrl *GhoibBailiffController) UpdateGhoibBailiff(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateGhoibBailiffRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBailiff.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var gb model.GhoibBailiffModel
	if err := ctrl.DB.First(&gb, "ghoib_bailiff_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jurusita ghoib tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jurusita ghoib")
	}

	if body.GhoibBailiffName != nil {
		gb.GhoibBailiffName = *body.GhoibBailiffName
	}
	if body.GhoibBailiffCounter != nil {
		gb.GhoibBailiffCounter = *body.GhoibBailiffCounter
	}
	if body.GhoibBailiffIsActive != nil {
		gb.GhoibBailiffIsActive = *body.GhoibBailiffIsActive
	}

	if err := ctrl.DB.Save(&gb).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jurusita ghoib")
	}
	return helper.JsonUpdated(c, "Jurusita ghoib berhasil diperbarui", dto.ToGhoibBailiffDTO(gb))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *GhoibBailiffController) DeleteGhoibBailiff(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	if err := ctrl.DB.Delete(&model.GhoibBailiffModel{}, "ghoib_bailiff_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jurusita ghoib")
	}
	return helper.JsonDeleted(c, "Jurusita ghoib berhasil dihapus", fiber.Map{"ghoib_bailiff_id": id})
}
