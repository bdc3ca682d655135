package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"gelar depan dan belakang", "Drs. Ahmad Fauzi, S.H., M.H.", []string{"ahmad", "fauzi"}},
		{"gelar bertitik jadi satu token", "Hj. Siti Aminah, M.Ag.", []string{"siti", "aminah"}},
		{"singkatan satu huruf dibuang", "H. Abdul Ghani", []string{"abdul", "ghani"}},
		{"tanpa gelar", "Ahmad Fauzi", []string{"ahmad", "fauzi"}},
		{"hanya gelar", "Drs. S.H.", []string{}},
		{"string kosong", "", []string{}},
		{"tanda hubung dipisah", "Nur-Hidayah Lestari", []string{"nur", "hidayah", "lestari"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTokens(tt.in))
		})
	}
}

func TestFlattenNameIdempotent(t *testing.T) {
	names := []string{
		"Drs. Ahmad Fauzi, S.H., M.H.",
		"Hj. Siti Aminah, M.Ag.",
		"Muhammad Ridwan",
	}
	for _, n := range names {
		once := FlattenName(n)
		assert.Equal(t, once, FlattenName(once), "normalisasi harus idempoten untuk %q", n)
	}
}

func TestSameName(t *testing.T) {
	// varian gelar dari orang yang sama harus cocok
	assert.True(t, SameName("Drs. Ahmad Fauzi, S.H., M.H.", "Ahmad Fauzi"))
	assert.True(t, SameName("Ahmad Fauzi", "Drs. Ahmad Fauzi, S.H."))

	// subset dua arah: nama pendek cocok dengan nama panjang
	assert.True(t, SameName("Ahmad", "Ahmad Fauzi"))
	assert.True(t, SameName("Ahmad Fauzi", "Ahmad"))

	// orang berbeda
	assert.False(t, SameName("Ahmad Fauzi", "Budi Santoso"))
	assert.False(t, SameName("Ahmad Fauzi", "Fauzi Rahman"))

	// nama yang habis jadi token kosong tidak boleh cocok dengan apa pun
	assert.False(t, SameName("Drs.", "Ahmad"))
	assert.False(t, SameName("", ""))
	assert.False(t, SameName("S.H., M.H.", "S.H., M.H."))
}
