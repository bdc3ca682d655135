package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePanels() []PanelRow {
	return []PanelRow{
		{
			ChamberIndex:   1,
			ChamberLabel:   "C1",
			PresidingName:  "Drs. Ahmad Fauzi, S.H., M.H.",
			Associate1Name: "Budi Santoso",
			Associate2Name: "Citra Dewi",
			ClerkPool:      []string{"Rina Wati", "Sari Indah"},
			BailiffPool:    []string{"Joko Susilo", "Tono Prasetyo"},
			Active:         true,
		},
		{
			ChamberIndex:   2,
			ChamberLabel:   "C2",
			PresidingName:  "Hj. Siti Aminah, M.Ag.",
			Associate1Name: "Dedi Kurniawan",
			Associate2Name: "Eka Putri",
			ClerkPool:      []string{"Lina Marlina"},
			BailiffPool:    []string{"Agus Salim"},
			Active:         true,
		},
	}
}

func TestResolvePanel(t *testing.T) {
	panels := samplePanels()

	// cocok lewat subset token walau gelar berbeda
	res, ok := ResolvePanel(panels, "Ahmad Fauzi")
	require.True(t, ok)
	assert.Equal(t, "C1", res.ChamberLabel)
	assert.Equal(t, "Budi Santoso", res.Associate1Name)
	assert.Equal(t, "Citra Dewi", res.Associate2Name)
	assert.Equal(t, []string{"Rina Wati", "Sari Indah"}, res.ClerkPool)

	// tidak ada SK untuk hakim ini: bukan error, cukup false
	res, ok = ResolvePanel(panels, "Zainal Abidin")
	assert.False(t, ok)
	assert.Nil(t, res)

	res, ok = ResolvePanel(panels, "   ")
	assert.False(t, ok)
	assert.Nil(t, res)
}

func TestResolvePanelIgnoresInactive(t *testing.T) {
	panels := samplePanels()
	panels[0].Active = false

	_, ok := ResolvePanel(panels, "Ahmad Fauzi")
	assert.False(t, ok, "SK nonaktif tidak boleh dipakai")
}

func TestResolvePanelAmbiguousPicksLowestChamber(t *testing.T) {
	panels := []PanelRow{
		{ChamberIndex: 3, ChamberLabel: "C3", PresidingName: "Ahmad Fauzi", Active: true},
		{ChamberIndex: 1, ChamberLabel: "C1", PresidingName: "Drs. Ahmad Fauzi, S.H.", Active: true},
		{ChamberIndex: 2, ChamberLabel: "C2", PresidingName: "Ahmad Fauzi, M.H.", Active: true},
	}

	res, ok := ResolvePanel(panels, "Ahmad Fauzi")
	require.True(t, ok)
	assert.Equal(t, 1, res.ChamberIndex, "ambiguitas diselesaikan ke index majelis terkecil")
	assert.Equal(t, "C1", res.ChamberLabel)
}
