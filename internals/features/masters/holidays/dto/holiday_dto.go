package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/holidays/model"
)

type HolidayDTO struct {
	HolidayID          string `json:"holiday_id"`
	HolidayDate        string `json:"holiday_date"`
	HolidayDescription string `json:"holiday_description"`
}

type CreateHolidayRequest struct {
	HolidayDate        string `json:"holiday_date" validate:"required,datetime=2006-01-02"`
	HolidayDescription string `json:"holiday_description" validate:"omitempty,max=200"`
}

type UpdateHolidayRequest struct {
	HolidayDate        *string `json:"holiday_date" validate:"omitempty,datetime=2006-01-02"`
	HolidayDescription *string `json:"holiday_description" validate:"omitempty,max=200"`
}

func ToHolidayDTO(m model.HolidayModel) HolidayDTO {
	return HolidayDTO{
		HolidayID:          m.HolidayID.String(),
		HolidayDate:        time.Time(m.HolidayDate).Format("2006-01-02"),
		HolidayDescription: m.HolidayDescription,
	}
}

func ParseHolidayDate(s string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}
