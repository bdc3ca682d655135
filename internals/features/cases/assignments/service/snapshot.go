// file: internals/features/cases/assignments/service/snapshot.go
package service

import (
	"time"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/model"
)

/* =========================
   Snapshot boundary
   Engine hanya membaca baris bertipe ini; konversi dari model/DB
   terjadi sekali di LoadSnapshot. Engine murni: tidak menyentuh storage.
========================= */

type JudgeRow struct {
	Name        string
	SittingDay  int // ISO 1..7, 0 = belum ditetapkan
	DailyCap    *int
	RosterIndex int
	Active      bool
}

type PanelRow struct {
	ChamberIndex   int
	ChamberLabel   string
	PresidingName  string
	Associate1Name string
	Associate2Name string
	ClerkPool      []string
	BailiffPool    []string
	Active         bool
}

type StaffRow struct {
	Name    string
	Aliases []string
	Active  bool
}

type GhoibBailiffRow struct {
	Name    string
	Counter int
	Active  bool
}

type HistoryEntry struct {
	CaseNumber     string
	Category       model.ProcessCategory
	JudgeName      string
	Associate1Name string
	Associate2Name string
	ClerkName      string
	BailiffName    string
}

// HolidaySet = daftar blokir tanggal, key "2006-01-02"
type HolidaySet map[string]struct{}

func NewHolidaySet(dates ...time.Time) HolidaySet {
	s := make(HolidaySet, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

func (s HolidaySet) Add(t time.Time) {
	s[t.Format("2006-01-02")] = struct{}{}
}

func (s HolidaySet) Contains(t time.Time) bool {
	_, ok := s[t.Format("2006-01-02")]
	return ok
}

// Snapshot = potret read-only seluruh tabel yang dibutuhkan satu kali submit.
// Serialisasi tulis (dua submit bersamaan dari snapshot yang sama) adalah
// tanggung jawab lapisan storage, bukan engine.
type Snapshot struct {
	Judges        []JudgeRow
	Panels        []PanelRow
	Clerks        []StaffRow
	Bailiffs      []StaffRow
	GhoibBailiffs []GhoibBailiffRow
	Holidays      HolidaySet
	History       []HistoryEntry
	Cursors       map[string]int // mode round-robin: key majelis → posisi kursor
}
