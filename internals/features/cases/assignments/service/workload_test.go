package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/model"
)

func TestCountLoads(t *testing.T) {
	history := []HistoryEntry{
		{
			CaseNumber:     "1/Pdt.G/2025/PA.Mks",
			JudgeName:      "Drs. Ahmad Fauzi, S.H.",
			Associate1Name: "Budi Santoso",
			Associate2Name: "Citra Dewi",
			ClerkName:      "Rina Wati",
			BailiffName:    "Joko Susilo",
		},
		{
			CaseNumber:     "2/Pdt.G/2025/PA.Mks",
			JudgeName:      "Ahmad Fauzi", // orang yang sama, beda gelar
			Associate1Name: "Citra Dewi",
			Associate2Name: "Budi Santoso",
			ClerkName:      "",
			BailiffName:    "Joko Susilo",
		},
	}

	judgeLoads := CountLoads(history, RoleJudge)
	assert.Equal(t, 2, judgeLoads["ahmad fauzi"], "varian gelar harus dihitung sebagai satu orang")

	assocLoads := CountLoads(history, RoleAssociate)
	assert.Equal(t, 2, assocLoads["budi santoso"], "anggota dihitung di kedua slot")
	assert.Equal(t, 2, assocLoads["citra dewi"])

	clerkLoads := CountLoads(history, RoleClerk)
	assert.Equal(t, 1, clerkLoads["rina wati"])
	assert.Len(t, clerkLoads, 1, "nama kosong di-skip, bukan jadi key kosong")

	bailiffLoads := CountLoads(history, RoleBailiff)
	assert.Equal(t, 2, bailiffLoads["joko susilo"])
}

func TestCountLoadsAppendDelta(t *testing.T) {
	history := []HistoryEntry{
		{CaseNumber: "1", JudgeName: "Ahmad Fauzi"},
		{CaseNumber: "2", JudgeName: "Siti Aminah"},
		{CaseNumber: "3", JudgeName: "Siti Aminah"},
		{CaseNumber: "4", JudgeName: "Zainal Abidin"},
	}
	before := CountLoads(history, RoleJudge)

	// satu perkara baru untuk Siti: hanya entri dia yang naik, tepat satu
	history = append(history, HistoryEntry{CaseNumber: "5", JudgeName: "Hj. Siti Aminah, M.Ag."})
	after := CountLoads(history, RoleJudge)

	assert.Equal(t, before["siti aminah"]+1, after["siti aminah"])
	assert.Len(t, after, len(before), "tidak boleh muncul key baru")
	for key, n := range before {
		if key == "siti aminah" {
			continue
		}
		assert.Equal(t, n, after[key], "beban %q tidak boleh berubah", key)
	}
}

func TestCountLoadsEmptyHistory(t *testing.T) {
	loads := CountLoads(nil, RoleJudge)
	assert.NotNil(t, loads)
	assert.Empty(t, loads)
}

func TestFilterByCategory(t *testing.T) {
	history := []HistoryEntry{
		{CaseNumber: "1", Category: model.CategoryBiasa},
		{CaseNumber: "2", Category: model.CategoryGhoib},
		{CaseNumber: "3", Category: model.CategoryGhoib},
	}

	ghoib := FilterByCategory(history, model.CategoryGhoib)
	assert.Len(t, ghoib, 2)
	for _, h := range ghoib {
		assert.Equal(t, model.CategoryGhoib, h.Category)
	}

	assert.Empty(t, FilterByCategory(history, model.CategoryMafqud))
}
