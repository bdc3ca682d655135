package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/holidays/dto"
	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/holidays/model"
	helper "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/helpers"
)

var validateHoliday = validator.New()

type HolidayController struct {
	DB *gorm.DB
}

func NewHolidayController(db *gorm.DB) *HolidayController {
	return &HolidayController{DB: db}
}

// =======================
// ➕ Create Hari Libur
// =======================
func (ctrl *HolidayController) CreateHoliday(c *fiber.Ctx) error {
	var body dto.CreateHolidayRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHoliday.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := dto.ParseHolidayDate(body.HolidayDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	holiday := model.HolidayModel{
		HolidayDate:        date,
		HolidayDescription: body.HolidayDescription,
	}

	if err := ctrl.DB.Create(&holiday).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Tanggal libur sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan hari libur")
	}
	return helper.JsonCreated(c, "Hari libur berhasil ditambahkan", dto.ToHolidayDTO(holiday))
}

// =======================
// 📄 Get All Hari Libur
// =======================
func (ctrl *HolidayController) GetAllHolidays(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.HolidayModel{})
	if year := c.Query("year"); year != "" {
		q = q.Where("EXTRACT(YEAR FROM holiday_date) = ?", year)
	}

	var holidays []model.HolidayModel
	if err := q.Order("holiday_date ASC").Find(&holidays).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data hari libur")
	}

	resp := make([]dto.HolidayDTO, 0, len(holidays))
	for _, h := range holidays {
		resp = append(resp, dto.ToHolidayDTO(h))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// ✏️ Update Hari Libur
// =======================
func (ctrl *HolidayController) UpdateHoliday(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateHolidayRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHoliday.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var holiday model.HolidayModel
	if err := ctrl.DB.First(&holiday, "holiday_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Hari libur tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hari libur")
	}

	if body.HolidayDate != nil {
		date, err := dto.ParseHolidayDate(*body.HolidayDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		holiday.HolidayDate = date
	}
	if body.HolidayDescription != nil {
		holiday.HolidayDescription = *body.HolidayDescription
	}

	if err := ctrl.DB.Save(&holiday).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Tanggal libur sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui hari libur")
	}
	return helper.JsonUpdated(c, "Hari libur berhasil diperbarui", dto.ToHolidayDTO(holiday))
}

// =============================
// 🗑️ Delete Hari Libur
// =============================
func (ctrl *HolidayController) DeleteHoliday(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	if err := ctrl.DB.Delete(&model.HolidayModel{}, "holiday_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus hari libur")
	}
	return helper.JsonDeleted(c, "Hari libur berhasil dihapus", fiber.Map{"holiday_id": id})
}
