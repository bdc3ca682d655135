package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/dto"
	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/model"
	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/service"
	bailiffModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/bailiffs/model"
	helper "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/helpers"
)

var validateCase = validator.New()

type CaseController struct {
	DB *gorm.DB
}

func NewCaseController(db *gorm.DB) *CaseController {
	return &CaseController{DB: db}
}

// =======================
// ➕ Submit perkara baru (PMH + PHS sekali jalan)
// =======================
func (ctrl *CaseController) CreateCase(c *fiber.Ctx) error {
	in, ferr := ctrl.parseAssignRequest(c)
	if ferr != nil {
		return ferr
	}

	snap, err := service.LoadSnapshot(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load snapshot: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data penetapan")
	}

	result := service.Assign(snap, *in)

	record := buildCaseRecord(*in, result)

	// append transaksional: baris riwayat + counter ghoib + kursor round-robin
	// harus satu kesatuan supaya dua submit bersamaan tidak saling menimpa
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		if result.GhoibPoolUsed && result.BailiffName != "" {
			if err := tx.Model(&bailiffModel.GhoibBailiffModel{}).
				Where("ghoib_bailiff_name = ?", result.BailiffName).
				UpdateColumn("ghoib_bailiff_counter", gorm.Expr("ghoib_bailiff_counter + 1")).Error; err != nil {
				return err
			}
		}

		if result.RotationMode == service.ModeRoundRobin && result.PanelFound && result.ChamberLabel != "" {
			cursor := model.RotationCursorModel{
				CursorKey:      result.ChamberLabel,
				CursorPosition: snap.Cursors[result.ChamberLabel],
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "cursor_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"cursor_position"}),
			}).Create(&cursor).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor perkara sudah terdaftar")
		}
		log.Printf("[ERROR] simpan penetapan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan penetapan")
	}

	return helper.JsonCreated(c, "Penetapan majelis & hari sidang berhasil", fiber.Map{
		"case":       dto.ToCaseDTO(record),
		"assignment": result,
	})
}

// =======================
// 👀 Preview penetapan tanpa simpan
// =======================
func (ctrl *CaseController) PreviewCase(c *fiber.Ctx) error {
	in, ferr := ctrl.parseAssignRequest(c)
	if ferr != nil {
		return ferr
	}

	snap, err := service.LoadSnapshot(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load snapshot: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data penetapan")
	}

	result := service.Assign(snap, *in)
	return helper.JsonOK(c, "Preview penetapan", result)
}

// =======================
// 📄 Riwayat penetapan (paginated)
// =======================
func (ctrl *CaseController) GetAllCases(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CaseModel{})
	if cat := c.Query("category"); cat != "" {
		q = q.Where("case_category = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung perkara")
	}

	var rows []model.CaseModel
	if err := q.Order("case_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat perkara")
	}

	resp := make([]dto.CaseDTO, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.ToCaseDTO(r))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Detail perkara by nomor
// =======================
func (ctrl *CaseController) GetCaseByNumber(c *fiber.Ctx) error {
	number := c.Params("number")
	if number == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "number is required")
	}

	var row model.CaseModel
	if err := ctrl.DB.Where("case_number = ?", number).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Perkara tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil perkara")
	}

	return helper.JsonOK(c, "", dto.ToCaseDTO(row))
}

// =======================
// 🔍 Detail perkara by id
// =======================
func (ctrl *CaseController) GetCaseByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var row model.CaseModel
	if err := ctrl.DB.First(&row, "case_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Perkara tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil perkara")
	}

	return helper.JsonOK(c, "", dto.ToCaseDTO(row))
}

// =============================
// 🗑️ Delete perkara (koreksi input salah)
// Catatan: beban historis ikut berkurang — rotasi berikutnya membaca
// riwayat yang tersisa, bukan yang pernah ada.
// =============================
func (ctrl *CaseController) DeleteCase(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	if err := ctrl.DB.Delete(&model.CaseModel{}, "case_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus perkara")
	}
	return helper.JsonDeleted(c, "Perkara berhasil dihapus", fiber.Map{"case_id": id})
}

// =============================
// utils
// =============================

func (ctrl *CaseController) parseAssignRequest(c *fiber.Ctx) (*service.AssignInput, error) {
	var body dto.CreateCaseRequest
	if err := c.BodyParser(&body); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCase.Struct(&body); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	regDate, err := time.Parse("2006-01-02", body.RegistrationDate)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "registration_date harus format YYYY-MM-DD")
	}

	in := &service.AssignInput{
		CaseNumber:       body.CaseNumber,
		RegistrationDate: regDate,
		Classification:   body.Classification,
		Category:         model.ProcessCategory(body.Category),
		ManualJudge:      body.ManualJudge,
		Mode:             service.RotationMode(body.RotationMode),
	}

	if body.ManualHearingDate != "" {
		hd, err := time.Parse("2006-01-02", body.ManualHearingDate)
		if err != nil {
			return nil, helper.JsonError(c, fiber.StatusBadRequest, "manual_hearing_date harus format YYYY-MM-DD")
		}
		in.ManualHearingDate = &hd
	}

	return in, nil
}

func buildCaseRecord(in service.AssignInput, result service.AssignResult) model.CaseModel {
	return model.CaseModel{
		CaseNumber:           in.CaseNumber,
		CaseRegistrationDate: datatypes.Date(in.RegistrationDate),
		CaseClassification:   in.Classification,
		CaseCategory:         in.Category,
		CaseJudgeName:        result.JudgeName,
		CaseAssociate1Name:   result.Associate1Name,
		CaseAssociate2Name:   result.Associate2Name,
		CaseClerkName:        result.ClerkName,
		CaseBailiffName:      result.BailiffName,
		CaseHearingDate:      datatypes.Date(result.HearingDate),
		CaseHearingManual:    result.HearingManual,
		CaseDecisionSnapshot: datatypes.JSONMap{
			"panel_found":      result.PanelFound,
			"chamber_label":    result.ChamberLabel,
			"clerk_degraded":   result.ClerkDegraded,
			"bailiff_degraded": result.BailiffDegraded,
			"ghoib_pool_used":  result.GhoibPoolUsed,
			"judge_manual":     result.JudgeManual,
			"hearing_manual":   result.HearingManual,
			"rotation_mode":    string(result.RotationMode),
		},
	}
}
