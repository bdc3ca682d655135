package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/model"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Judges: []JudgeRow{
			{Name: "Drs. Ahmad Fauzi, S.H., M.H.", SittingDay: 3, RosterIndex: 1, Active: true},
			{Name: "Hj. Siti Aminah, M.Ag.", SittingDay: 1, RosterIndex: 2, Active: true},
		},
		Panels: samplePanels(),
		Clerks: []StaffRow{
			{Name: "Rina Wati", Active: true},
			{Name: "Sari Indah", Active: true},
			{Name: "Lina Marlina", Active: true},
		},
		Bailiffs: []StaffRow{
			{Name: "Joko Susilo", Active: true},
			{Name: "Tono Prasetyo", Active: true},
			{Name: "Agus Salim", Active: true},
		},
		Holidays: HolidaySet{},
		Cursors:  map[string]int{},
	}
}

func TestAssignFullPipeline(t *testing.T) {
	snap := sampleSnapshot()

	res := Assign(snap, AssignInput{
		CaseNumber:       "1/Pdt.G/2025/PA.Mks",
		RegistrationDate: date(2025, time.January, 1),
		Category:         model.CategoryBiasa,
	})

	// beban kosong: hakim roster pertama, SK C1 ketemu
	assert.Equal(t, "Drs. Ahmad Fauzi, S.H., M.H.", res.JudgeName)
	require.True(t, res.PanelFound)
	assert.Equal(t, "C1", res.ChamberLabel)
	assert.Equal(t, "Budi Santoso", res.Associate1Name)
	assert.Equal(t, "Citra Dewi", res.Associate2Name)

	// rotasi dari pool SK, bukan roster penuh
	assert.Equal(t, "Rina Wati", res.ClerkName)
	assert.Equal(t, "Joko Susilo", res.BailiffName)
	assert.False(t, res.ClerkDegraded)
	assert.False(t, res.BailiffDegraded)

	// hari sidang Rabu → fixture PHS perkara biasa
	assert.Equal(t, date(2025, time.January, 15), res.HearingDate)
	assert.False(t, res.JudgeManual)
	assert.False(t, res.HearingManual)
	assert.Equal(t, ModeLoad, res.RotationMode)
}

func TestAssignNoPanelDegradesToFullRoster(t *testing.T) {
	snap := sampleSnapshot()
	snap.Panels = nil

	res := Assign(snap, AssignInput{
		CaseNumber:       "2/Pdt.G/2025/PA.Mks",
		RegistrationDate: date(2025, time.January, 1),
		Category:         model.CategoryBiasa,
	})

	assert.False(t, res.PanelFound)
	assert.True(t, res.ClerkDegraded)
	assert.True(t, res.BailiffDegraded)
	assert.Empty(t, res.Associate1Name)

	// rotasi tetap jalan di atas roster aktif penuh
	assert.Equal(t, "Lina Marlina", res.ClerkName, "tie-break alfabetis pada roster penuh")
	assert.Equal(t, "Agus Salim", res.BailiffName)
}

func TestAssignPanelFoundButEmptyPool(t *testing.T) {
	// SK ketemu tapi pool kandidat kosong: BUKAN mode degradasi —
	// hasilnya nama kosong dengan flag degraded false, supaya operator
	// bisa membedakan "SK bolong" dari "SK tidak ada".
	snap := sampleSnapshot()
	snap.Panels[0].ClerkPool = nil
	snap.Panels[0].BailiffPool = nil

	res := Assign(snap, AssignInput{
		CaseNumber:       "3/Pdt.G/2025/PA.Mks",
		RegistrationDate: date(2025, time.January, 1),
		Category:         model.CategoryBiasa,
	})

	require.True(t, res.PanelFound)
	assert.Empty(t, res.ClerkName)
	assert.Empty(t, res.BailiffName)
	assert.False(t, res.ClerkDegraded)
	assert.False(t, res.BailiffDegraded)
}

func TestAssignPanelPoolCountsAliasLoad(t *testing.T) {
	// riwayat ditulis dengan ejaan alias: beban harus tetap menempel ke
	// kandidat pool SK, sama seperti di jalur roster penuh
	snap := sampleSnapshot()
	snap.Clerks[0].Aliases = []string{"Rina W."}
	snap.History = []HistoryEntry{
		{CaseNumber: "10/Pdt.G/2025/PA.Mks", ClerkName: "Rina W."},
	}

	res := Assign(snap, AssignInput{
		CaseNumber:       "11/Pdt.G/2025/PA.Mks",
		RegistrationDate: date(2025, time.January, 1),
		Category:         model.CategoryBiasa,
	})

	require.True(t, res.PanelFound)
	assert.Equal(t, "Sari Indah", res.ClerkName, "beban alias Rina terlihat di rotasi pool SK")
}

func TestAssignManualOverrides(t *testing.T) {
	snap := sampleSnapshot()
	manualDate := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.Local)

	res := Assign(snap, AssignInput{
		CaseNumber:        "4/Pdt.G/2025/PA.Mks",
		RegistrationDate:  date(2025, time.January, 1),
		Category:          model.CategoryBiasa,
		ManualJudge:       "  Hj. Siti Aminah, M.Ag.  ",
		ManualHearingDate: &manualDate,
	})

	// nama manual dipakai verbatim setelah trim, bukan hasil normalisasi
	assert.Equal(t, "Hj. Siti Aminah, M.Ag.", res.JudgeName)
	assert.True(t, res.JudgeManual)

	// SK milik hakim manual yang dipakai
	require.True(t, res.PanelFound)
	assert.Equal(t, "C2", res.ChamberLabel)

	// tanggal manual dipakai tanpa kalkulator, jam dibuang
	assert.True(t, res.HearingManual)
	assert.Equal(t, date(2025, time.March, 10), res.HearingDate)
}

func TestAssignGhoibUsesDedicatedPool(t *testing.T) {
	snap := sampleSnapshot()
	snap.GhoibBailiffs = []GhoibBailiffRow{
		{Name: "Wahyu Hidayat", Counter: 0, Active: true},
	}

	res := Assign(snap, AssignInput{
		CaseNumber:       "5/Pdt.G/2025/PA.Mks",
		RegistrationDate: date(2025, time.January, 1),
		Classification:   "CG",
		Category:         model.CategoryGhoib,
	})

	assert.Equal(t, "Wahyu Hidayat", res.BailiffName, "pool ghoib menang atas rotasi SK")
	assert.True(t, res.GhoibPoolUsed)

	// offset cerai ghoib +124 lalu maju ke hari sidang Rabu
	assert.Equal(t, 3, isoWeekday(res.HearingDate))
	assert.False(t, res.HearingDate.Before(date(2025, time.May, 5)))
}

func TestAssignGhoibEmptyPoolFallsBackToRotation(t *testing.T) {
	snap := sampleSnapshot()
	snap.GhoibBailiffs = nil

	res := Assign(snap, AssignInput{
		CaseNumber:       "6/Pdt.G/2025/PA.Mks",
		RegistrationDate: date(2025, time.January, 1),
		Classification:   "P",
		Category:         model.CategoryGhoib,
	})

	assert.False(t, res.GhoibPoolUsed)
	assert.Equal(t, "Joko Susilo", res.BailiffName, "jatuh kembali ke rotasi pool SK")
}

func TestAssignRoundRobinCyclesPairs(t *testing.T) {
	snap := sampleSnapshot()

	in := AssignInput{
		CaseNumber:       "7/Pdt.G/2025/PA.Mks",
		RegistrationDate: date(2025, time.January, 1),
		Category:         model.CategoryBiasa,
		Mode:             ModeRoundRobin,
	}

	type pair struct{ clerk, bailiff string }
	want := []pair{
		{"Rina Wati", "Joko Susilo"},
		{"Sari Indah", "Joko Susilo"},
		{"Rina Wati", "Tono Prasetyo"},
		{"Sari Indah", "Tono Prasetyo"},
		{"Rina Wati", "Joko Susilo"}, // siklus kembali
	}

	for i, w := range want {
		res := Assign(snap, in)
		assert.Equal(t, w.clerk, res.ClerkName, "langkah %d", i)
		assert.Equal(t, w.bailiff, res.BailiffName, "langkah %d", i)
		assert.Equal(t, ModeRoundRobin, res.RotationMode)
	}

	// kursor dimutasi pada peta milik pemanggil
	assert.Equal(t, 1, snap.Cursors["C1"]%4)
}

func TestAssignZeroRegistrationDate(t *testing.T) {
	snap := sampleSnapshot()

	res := Assign(snap, AssignInput{
		CaseNumber: "8/Pdt.G/2025/PA.Mks",
		Category:   model.CategoryBiasa,
	})

	assert.True(t, res.HearingDate.IsZero(), "tanggal daftar kosong → PHS dibiarkan kosong, bukan panic")
	assert.NotEmpty(t, res.JudgeName, "penetapan personel tetap jalan")
}

func TestAssignNoActiveJudges(t *testing.T) {
	snap := sampleSnapshot()
	for i := range snap.Judges {
		snap.Judges[i].Active = false
	}

	res := Assign(snap, AssignInput{
		CaseNumber:       "9/Pdt.G/2025/PA.Mks",
		RegistrationDate: date(2025, time.January, 1),
		Category:         model.CategoryBiasa,
	})

	assert.Empty(t, res.JudgeName)
	assert.False(t, res.PanelFound)
	assert.True(t, res.ClerkDegraded)
	// tanpa hakim tidak ada hari sidang tetap: +8 dipakai apa adanya
	assert.Equal(t, date(2025, time.January, 9), res.HearingDate)
}
