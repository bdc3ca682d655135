package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectJudgePicksLowestLoad(t *testing.T) {
	judges := []JudgeRow{
		{Name: "Ahmad Fauzi", RosterIndex: 1, Active: true},
		{Name: "Siti Aminah", RosterIndex: 2, Active: true},
		{Name: "Zainal Abidin", RosterIndex: 3, Active: true},
	}
	history := []HistoryEntry{
		{JudgeName: "Ahmad Fauzi"},
		{JudgeName: "Ahmad Fauzi"},
		{JudgeName: "Siti Aminah"},
	}

	assert.Equal(t, "Zainal Abidin", SelectJudge(judges, history))
}

func TestSelectJudgeTieBreakByRosterIndex(t *testing.T) {
	judges := []JudgeRow{
		{Name: "Zainal Abidin", RosterIndex: 3, Active: true},
		{Name: "Ahmad Fauzi", RosterIndex: 1, Active: true},
		{Name: "Siti Aminah", RosterIndex: 2, Active: true},
	}

	// beban nol semua: urutan roster yang menentukan, bukan urutan slice
	assert.Equal(t, "Ahmad Fauzi", SelectJudge(judges, nil))
}

func TestSelectJudgeDeterministic(t *testing.T) {
	judges := []JudgeRow{
		{Name: "Ahmad Fauzi", RosterIndex: 1, Active: true},
		{Name: "Siti Aminah", RosterIndex: 2, Active: true},
	}
	history := []HistoryEntry{{JudgeName: "Ahmad Fauzi"}}

	first := SelectJudge(judges, history)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SelectJudge(judges, history), "snapshot sama harus menghasilkan hakim sama")
	}
}

func TestSelectJudgeSkipsInactive(t *testing.T) {
	judges := []JudgeRow{
		{Name: "Ahmad Fauzi", RosterIndex: 1, Active: false},
		{Name: "Siti Aminah", RosterIndex: 2, Active: true},
	}
	assert.Equal(t, "Siti Aminah", SelectJudge(judges, nil))
}

func TestSelectJudgeNoActive(t *testing.T) {
	judges := []JudgeRow{
		{Name: "Ahmad Fauzi", Active: false},
	}
	assert.Equal(t, "", SelectJudge(judges, nil), "tanpa hakim aktif hasilnya kosong, bukan panic")
	assert.Equal(t, "", SelectJudge(nil, nil))
}

func TestSittingDayOf(t *testing.T) {
	judges := []JudgeRow{
		{Name: "Drs. Ahmad Fauzi, S.H.", SittingDay: 3, Active: true},
		{Name: "Siti Aminah", SittingDay: 0, Active: true},
	}

	assert.Equal(t, 3, SittingDayOf(judges, "Ahmad Fauzi"), "pencarian pakai aturan subset token")
	assert.Equal(t, 0, SittingDayOf(judges, "Siti Aminah"), "hari belum ditetapkan = 0")
	assert.Equal(t, 0, SittingDayOf(judges, "Zainal Abidin"), "tidak ditemukan = 0")
}
