package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateRolePicksLowestLoad(t *testing.T) {
	clerks := []StaffRow{
		{Name: "Rina Wati", Active: true},
		{Name: "Sari Indah", Active: true},
	}
	history := []HistoryEntry{
		{ClerkName: "Rina Wati"},
		{ClerkName: "Rina Wati"},
		{ClerkName: "Sari Indah"},
	}

	assert.Equal(t, "Sari Indah", RotateRole(clerks, history, RoleClerk))
}

func TestRotateRoleAliasAddsLoad(t *testing.T) {
	clerks := []StaffRow{
		{Name: "Rina Wati", Aliases: []string{"Rina W."}, Active: true},
		{Name: "Sari Indah", Active: true},
	}
	// riwayat pakai ejaan alias: beban tetap menempel ke Rina
	history := []HistoryEntry{
		{ClerkName: "Rina W."},
	}

	assert.Equal(t, "Sari Indah", RotateRole(clerks, history, RoleClerk))
}

func TestRotateRoleTieBreakAlphabetical(t *testing.T) {
	bailiffs := []StaffRow{
		{Name: "Tono Prasetyo", Active: true},
		{Name: "Agus Salim", Active: true},
	}
	assert.Equal(t, "Agus Salim", RotateRole(bailiffs, nil, RoleBailiff))
}

func TestRotateRoleEmptyPool(t *testing.T) {
	assert.Equal(t, "", RotateRole(nil, nil, RoleClerk))

	inactive := []StaffRow{{Name: "Rina Wati", Active: false}}
	assert.Equal(t, "", RotateRole(inactive, nil, RoleClerk))
}

func TestPoolFromNames(t *testing.T) {
	pool := PoolFromNames([]string{"Rina Wati", "Sari Indah"}, nil)
	require.Len(t, pool, 2)
	for _, s := range pool {
		assert.True(t, s.Active)
		assert.Empty(t, s.Aliases)
	}
}

func TestPoolFromNamesCarriesRosterAliases(t *testing.T) {
	roster := []StaffRow{
		{Name: "Rina Wati", Aliases: []string{"Rina W."}, Active: true},
		{Name: "Sari Indah", Active: true},
	}

	// nama di SK ditulis dengan gelar, roster tanpa gelar: tetap cocok
	pool := PoolFromNames([]string{"Rina Wati, S.H.", "Sari Indah"}, roster)
	require.Len(t, pool, 2)
	assert.Equal(t, []string{"Rina W."}, pool[0].Aliases)
	assert.Empty(t, pool[1].Aliases)
}

func TestRotateGhoibBailiff(t *testing.T) {
	pool := []GhoibBailiffRow{
		{Name: "Joko Susilo", Counter: 5, Active: true},
		{Name: "Agus Salim", Counter: 2, Active: true},
		{Name: "Tono Prasetyo", Counter: 2, Active: true},
	}

	name, ok := RotateGhoibBailiff(pool)
	require.True(t, ok)
	assert.Equal(t, "Agus Salim", name, "counter terkecil menang, seri diputus alfabetis")
}

func TestRotateGhoibBailiffEmptyPoolFallsBack(t *testing.T) {
	_, ok := RotateGhoibBailiff(nil)
	assert.False(t, ok)

	inactive := []GhoibBailiffRow{{Name: "Joko Susilo", Active: false}}
	_, ok = RotateGhoibBailiff(inactive)
	assert.False(t, ok, "pool tanpa entri aktif harus jatuh ke rotasi biasa")
}
