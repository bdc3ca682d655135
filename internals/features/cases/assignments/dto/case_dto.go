package dto

import (
	"time"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/model"
)

// ============================
// Create / Preview Request DTO
// ============================

type CreateCaseRequest struct {
	CaseNumber       string `json:"case_number" validate:"required,min=3,max=60"`
	RegistrationDate string `json:"registration_date" validate:"required"` // format 2006-01-02
	Classification   string `json:"classification" validate:"max=60"`
	Category         string `json:"category" validate:"required,oneof=biasa istbat ghoib rogatori mafqud"`

	// Override opsional
	ManualJudge       string `json:"manual_judge"`
	ManualHearingDate string `json:"manual_hearing_date"` // format 2006-01-02
	RotationMode      string `json:"rotation_mode" validate:"omitempty,oneof=load round_robin"`
}

// ============================
// Response DTO
// ============================

type CaseDTO struct {
	CaseID               string                 `json:"case_id"`
	CaseNumber           string                 `json:"case_number"`
	CaseRegistrationDate string                 `json:"case_registration_date"`
	CaseClassification   string                 `json:"case_classification"`
	CaseCategory         string                 `json:"case_category"`
	CaseJudgeName        string                 `json:"case_judge_name"`
	CaseAssociate1Name   string                 `json:"case_associate1_name"`
	CaseAssociate2Name   string                 `json:"case_associate2_name"`
	CaseClerkName        string                 `json:"case_clerk_name"`
	CaseBailiffName      string                 `json:"case_bailiff_name"`
	CaseHearingDate      string                 `json:"case_hearing_date"`
	CaseHearingManual    bool                   `json:"case_hearing_manual"`
	CaseDecisionSnapshot map[string]interface{} `json:"case_decision_snapshot"`
	CaseCreatedAt        time.Time              `json:"case_created_at"`
}

// ============================
// Converter
// ============================

func ToCaseDTO(m model.CaseModel) CaseDTO {
	return CaseDTO{
		CaseID:               m.CaseID.String(),
		CaseNumber:           m.CaseNumber,
		CaseRegistrationDate: time.Time(m.CaseRegistrationDate).Format("2006-01-02"),
		CaseClassification:   m.CaseClassification,
		CaseCategory:         string(m.CaseCategory),
		CaseJudgeName:        m.CaseJudgeName,
		CaseAssociate1Name:   m.CaseAssociate1Name,
		CaseAssociate2Name:   m.CaseAssociate2Name,
		CaseClerkName:        m.CaseClerkName,
		CaseBailiffName:      m.CaseBailiffName,
		CaseHearingDate:      time.Time(m.CaseHearingDate).Format("2006-01-02"),
		CaseHearingManual:    m.CaseHearingManual,
		CaseDecisionSnapshot: m.CaseDecisionSnapshot,
		CaseCreatedAt:        m.CaseCreatedAt,
	}
}
