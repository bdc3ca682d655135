package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairSlotCycle(t *testing.T) {
	// siklus pasangan: P1J1 → P2J1 → P1J2 → P2J2
	type pair struct{ clerk, bailiff int }
	want := []pair{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	for pos, w := range want {
		c, b := PairSlot(pos)
		assert.Equal(t, w.clerk, c, "pos %d", pos)
		assert.Equal(t, w.bailiff, b, "pos %d", pos)
	}

	// wrap setelah satu siklus penuh
	c, b := PairSlot(4)
	assert.Equal(t, 0, c)
	assert.Equal(t, 0, b)

	// posisi negatif (kursor korup) tetap menghasilkan slot valid
	c, b = PairSlot(-1)
	assert.GreaterOrEqual(t, c, 0)
	assert.GreaterOrEqual(t, b, 0)
}

func TestNextCursorAdvancesPerKey(t *testing.T) {
	cursors := map[string]int{}

	assert.Equal(t, 0, NextCursor(cursors, "C1"))
	assert.Equal(t, 1, NextCursor(cursors, "C1"))
	assert.Equal(t, 2, NextCursor(cursors, "C1"))
	assert.Equal(t, 3, NextCursor(cursors, "C1"))
	assert.Equal(t, 0, NextCursor(cursors, "C1"), "siklus kembali ke awal")

	// kursor majelis lain independen
	assert.Equal(t, 0, NextCursor(cursors, "C2"))
}
