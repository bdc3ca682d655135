package dto

import (
	"time"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/judges/model"
)

type JudgeDTO struct {
	JudgeID          string    `json:"judge_id"`
	JudgeName        string    `json:"judge_name"`
	JudgeSittingDay  int       `json:"judge_sitting_day"`
	JudgeDailyCap    *int      `json:"judge_daily_cap,omitempty"`
	JudgeRosterIndex int       `json:"judge_roster_index"`
	JudgeIsActive    bool      `json:"judge_is_active"`
	JudgeNote        string    `json:"judge_note"`
	JudgeCreatedAt   time.Time `json:"judge_created_at"`
}

type CreateJudgeRequest struct {
	JudgeName        string `json:"judge_name" validate:"required,min=3,max=150"`
	JudgeSittingDay  int    `json:"judge_sitting_day" validate:"min=0,max=7"` // 0 = belum ditetapkan
	JudgeDailyCap    *int   `json:"judge_daily_cap" validate:"omitempty,min=1"`
	JudgeRosterIndex int    `json:"judge_roster_index" validate:"min=0"`
	JudgeIsActive    *bool  `json:"judge_is_active"`
	JudgeNote        string `json:"judge_note"`
}

type UpdateJudgeRequest struct {
	JudgeName        *string `json:"judge_name" validate:"omitempty,min=3,max=150"`
	JudgeSittingDay  *int    `json:"judge_sitting_day" validate:"omitempty,min=0,max=7"`
	JudgeDailyCap    *int    `json:"judge_daily_cap" validate:"omitempty,min=1"`
	JudgeRosterIndex *int    `json:"judge_roster_index" validate:"omitempty,min=0"`
	JudgeIsActive    *bool   `json:"judge_is_active"`
	JudgeNote        *string `json:"judge_note"`
}

func ToJudgeDTO(m model.JudgeModel) JudgeDTO {
	return JudgeDTO{
		JudgeID:          m.JudgeID.String(),
		JudgeName:        m.JudgeName,
		JudgeSittingDay:  m.JudgeSittingDay,
		JudgeDailyCap:    m.JudgeDailyCap,
		JudgeRosterIndex: m.JudgeRosterIndex,
		JudgeIsActive:    m.JudgeIsActive,
		JudgeNote:        m.JudgeNote,
		JudgeCreatedAt:   m.JudgeCreatedAt,
	}
}
