// file: internals/features/cases/assignments/service/loader.go
package service

import (
	"time"

	"gorm.io/gorm"

	caseModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/model"
	bailiffModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/bailiffs/model"
	clerkModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/clerks/model"
	holidayModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/holidays/model"
	judgeModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/judges/model"
	panelModel "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/masters/panels/model"
)

// LoadSnapshot membangun potret read-only untuk satu kali submit.
// Ini batas kolaborator: baris dict-like dari DB dikonversi sekali menjadi
// record bertipe; engine tidak pernah menyentuh *gorm.DB.
func LoadSnapshot(db *gorm.DB) (Snapshot, error) {
	snap := Snapshot{
		Holidays: HolidaySet{},
		Cursors:  map[string]int{},
	}

	var judges []judgeModel.JudgeModel
	if err := db.Order("judge_roster_index ASC, judge_name ASC").Find(&judges).Error; err != nil {
		return snap, err
	}
	for _, j := range judges {
		snap.Judges = append(snap.Judges, JudgeRow{
			Name:        j.JudgeName,
			SittingDay:  j.JudgeSittingDay,
			DailyCap:    j.JudgeDailyCap,
			RosterIndex: j.JudgeRosterIndex,
			Active:      j.JudgeIsActive,
		})
	}

	var panels []panelModel.PanelModel
	if err := db.Order("panel_chamber_index ASC, panel_chamber_label ASC").Find(&panels).Error; err != nil {
		return snap, err
	}
	for _, p := range panels {
		snap.Panels = append(snap.Panels, PanelRow{
			ChamberIndex:   p.PanelChamberIndex,
			ChamberLabel:   p.PanelChamberLabel,
			PresidingName:  p.PanelPresidingName,
			Associate1Name: p.PanelAssociate1Name,
			Associate2Name: p.PanelAssociate2Name,
			ClerkPool:      p.PanelClerkPool,
			BailiffPool:    p.PanelBailiffPool,
			Active:         p.PanelIsActive,
		})
	}

	var clerks []clerkModel.ClerkModel
	if err := db.Order("clerk_name ASC").Find(&clerks).Error; err != nil {
		return snap, err
	}
	for _, c := range clerks {
		snap.Clerks = append(snap.Clerks, StaffRow{
			Name:    c.ClerkName,
			Aliases: c.ClerkAliases,
			Active:  c.ClerkIsActive,
		})
	}

	var bailiffs []bailiffModel.BailiffModel
	if err := db.Order("bailiff_name ASC").Find(&bailiffs).Error; err != nil {
		return snap, err
	}
	for _, b := range bailiffs {
		snap.Bailiffs = append(snap.Bailiffs, StaffRow{
			Name:    b.BailiffName,
			Aliases: b.BailiffAliases,
			Active:  b.BailiffIsActive,
		})
	}

	var ghoib []bailiffModel.GhoibBailiffModel
	if err := db.Order("ghoib_bailiff_name ASC").Find(&ghoib).Error; err != nil {
		return snap, err
	}
	for _, g := range ghoib {
		snap.GhoibBailiffs = append(snap.GhoibBailiffs, GhoibBailiffRow{
			Name:    g.GhoibBailiffName,
			Counter: g.GhoibBailiffCounter,
			Active:  g.GhoibBailiffIsActive,
		})
	}

	var holidays []holidayModel.HolidayModel
	if err := db.Find(&holidays).Error; err != nil {
		return snap, err
	}
	for _, h := range holidays {
		snap.Holidays.Add(time.Time(h.HolidayDate))
	}

	var cases []caseModel.CaseModel
	if err := db.Order("case_created_at ASC").Find(&cases).Error; err != nil {
		return snap, err
	}
	for _, cs := range cases {
		snap.History = append(snap.History, HistoryEntry{
			CaseNumber:     cs.CaseNumber,
			Category:       cs.CaseCategory,
			JudgeName:      cs.CaseJudgeName,
			Associate1Name: cs.CaseAssociate1Name,
			Associate2Name: cs.CaseAssociate2Name,
			ClerkName:      cs.CaseClerkName,
			BailiffName:    cs.CaseBailiffName,
		})
	}

	var cursors []caseModel.RotationCursorModel
	if err := db.Find(&cursors).Error; err != nil {
		return snap, err
	}
	for _, cur := range cursors {
		snap.Cursors[cur.CursorKey] = cur.CursorPosition
	}

	return snap, nil
}
