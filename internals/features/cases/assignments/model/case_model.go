package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProcessCategory = jalur proses perkara, menentukan offset hari sidang
type ProcessCategory string

const (
	CategoryBiasa    ProcessCategory = "biasa"    // perkara biasa
	CategoryIstbat   ProcessCategory = "istbat"   // istbat nikah
	CategoryGhoib    ProcessCategory = "ghoib"    // tergugat ghoib
	CategoryRogatori ProcessCategory = "rogatori" // tabayun / rogatori
	CategoryMafqud   ProcessCategory = "mafqud"   // orang hilang
)

// Valid memeriksa kategori yang dikenal (input luar masuk lewat DTO)
func (p ProcessCategory) Valid() bool {
	switch p {
	case CategoryBiasa, CategoryIstbat, CategoryGhoib, CategoryRogatori, CategoryMafqud:
		return true
	}
	return false
}

// CaseModel = satu baris riwayat penetapan (PMH + PHS).
// Append-only: core tidak pernah mengubah baris setelah dibuat;
// akumulasinya menjadi satu-satunya sumber hitung beban.
type CaseModel struct {
	CaseID uuid.UUID `gorm:"column:case_id;type:uuid;default:gen_random_uuid();primaryKey" json:"case_id"`

	CaseNumber           string          `gorm:"column:case_number;type:varchar(60);not null;uniqueIndex" json:"case_number"`
	CaseRegistrationDate datatypes.Date  `gorm:"column:case_registration_date;type:date;not null" json:"case_registration_date"`
	CaseClassification   string          `gorm:"column:case_classification;type:varchar(60)" json:"case_classification"`
	CaseCategory         ProcessCategory `gorm:"column:case_category;type:varchar(20);not null" json:"case_category"`

	CaseJudgeName      string `gorm:"column:case_judge_name;type:varchar(150)" json:"case_judge_name"`
	CaseAssociate1Name string `gorm:"column:case_associate1_name;type:varchar(150)" json:"case_associate1_name"`
	CaseAssociate2Name string `gorm:"column:case_associate2_name;type:varchar(150)" json:"case_associate2_name"`
	CaseClerkName      string `gorm:"column:case_clerk_name;type:varchar(150)" json:"case_clerk_name"`
	CaseBailiffName    string `gorm:"column:case_bailiff_name;type:varchar(150)" json:"case_bailiff_name"`

	CaseHearingDate   datatypes.Date `gorm:"column:case_hearing_date;type:date" json:"case_hearing_date"`
	CaseHearingManual bool           `gorm:"column:case_hearing_manual;not null;default:false" json:"case_hearing_manual"`

	// Snapshot keputusan engine (panel_found, degraded flags, mode rotasi dsb.)
	CaseDecisionSnapshot datatypes.JSONMap `gorm:"column:case_decision_snapshot;type:jsonb" json:"case_decision_snapshot"`

	CaseCreatedAt time.Time `gorm:"column:case_created_at;autoCreateTime" json:"case_created_at"`
	CaseUpdatedAt time.Time `gorm:"column:case_updated_at;autoUpdateTime" json:"case_updated_at"`
}

func (CaseModel) TableName() string {
	return "cases"
}
