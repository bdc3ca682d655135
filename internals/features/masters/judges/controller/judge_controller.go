package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/judges/dto"
	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/judges/model"
	helper "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/helpers"
)

var validateJudge = validator.New()

type JudgeController struct {
	DB *gorm.DB
}

func NewJudgeController(db *gorm.DB) *JudgeController {
	return &JudgeController{DB: db}
}

// =======================
// ➕ Create Hakim
// =======================
func (ctrl *JudgeController) CreateJudge(c *fiber.Ctx) error {
	var body dto.CreateJudgeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateJudge.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	judge := model.JudgeModel{
		JudgeName:        body.JudgeName,
		JudgeSittingDay:  body.JudgeSittingDay,
		JudgeDailyCap:    body.JudgeDailyCap,
		JudgeRosterIndex: body.JudgeRosterIndex,
		JudgeIsActive:    true,
		JudgeNote:        body.JudgeNote,
	}
	if body.JudgeIsActive != nil {
		judge.JudgeIsActive = *body.JudgeIsActive
	}

	if err := ctrl.DB.Create(&judge).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan hakim")
	}

	return helper.JsonCreated(c, "Hakim berhasil ditambahkan", dto.ToJudgeDTO(judge))
}

// =======================
// 📄 Get All Hakim
// =======================
func (ctrl *JudgeController) GetAllJudges(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.JudgeModel{})
	if c.Query("active") == "true" {
		q = q.Where("judge_is_active = ?", true)
	}

	var judges []model.JudgeModel
	if err := q.Order("judge_roster_index ASC, judge_name ASC").Find(&judges).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data hakim")
	}

	resp := make([]dto.JudgeDTO, 0, len(judges))
	for _, j := range judges {
		resp = append(resp, dto.ToJudgeDTO(j))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// ✏️ Update Hakim
// =======================
func (ctrl *JudgeController) UpdateJudge(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateJudgeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateJudge.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var judge model.JudgeModel
	if err := ctrl.DB.First(&judge, "judge_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Hakim tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hakim")
	}

	if body.JudgeName != nil {
		judge.JudgeName = *body.JudgeName
	}
	if body.JudgeSittingDay != nil {
		judge.JudgeSittingDay = *body.JudgeSittingDay
	}
	if body.JudgeDailyCap != nil {
		judge.JudgeDailyCap = body.JudgeDailyCap
	}
	if body.JudgeRosterIndex != nil {
		judge.JudgeRosterIndex = *body.JudgeRosterIndex
	}
	if body.JudgeIsActive != nil {
		judge.JudgeIsActive = *body.JudgeIsActive
	}
	if body.JudgeNote != nil {
		judge.JudgeNote = *body.JudgeNote
	}

	if err := ctrl.DB.Save(&judge).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui hakim")
	}
	return helper.JsonUpdated(c, "Hakim berhasil diperbarui", dto.ToJudgeDTO(judge))
}

// =============================
// 🗑️ Delete Hakim
// =============================
func (ctrl *JudgeController) DeleteJudge(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	if err := ctrl.DB.Delete(&model.JudgeModel{}, "judge_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus hakim")
	}
	return helper.JsonDeleted(c, "Hakim berhasil dihapus", fiber.Map{"judge_id": id})
}
