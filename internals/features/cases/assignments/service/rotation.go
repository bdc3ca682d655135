// file: internals/features/cases/assignments/service/rotation.go
package service

import "sort"

// RotateRole memilih kandidat berbeban historis terkecil.
// Beban dihitung dari SELURUH riwayat pada kolom peran (keadilan beban total,
// bukan per-hakim); alias ejaan ikut menambah beban kandidat.
// Tie-break: alfabetis nama ternormalisasi. Pool kosong = string kosong.
func RotateRole(candidates []StaffRow, history []HistoryEntry, col RoleColumn) string {
	loads := CountLoads(history, col)

	pool := make([]StaffRow, 0, len(candidates))
	for _, c := range candidates {
		if c.Active && FlattenName(c.Name) != "" {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return ""
	}

	loadOf := func(s StaffRow) int {
		n := loads[FlattenName(s.Name)]
		for _, a := range s.Aliases {
			n += loads[FlattenName(a)]
		}
		return n
	}

	sort.SliceStable(pool, func(i, j int) bool {
		li, lj := loadOf(pool[i]), loadOf(pool[j])
		if li != lj {
			return li < lj
		}
		return FlattenName(pool[i].Name) < FlattenName(pool[j].Name)
	})
	return pool[0].Name
}

// PoolFromNames membungkus kandidat SK (nama polos) jadi StaffRow aktif.
// Alias diambil dari baris roster yang cocok (SameName): SK hanya menulis
// satu ejaan, sedangkan riwayat bisa memakai ejaan alternatif — tanpa ini
// beban historis ber-alias tidak menempel ke kandidat pool.
func PoolFromNames(names []string, roster []StaffRow) []StaffRow {
	pool := make([]StaffRow, 0, len(names))
	for _, n := range names {
		row := StaffRow{Name: n, Active: true}
		for _, r := range roster {
			if SameName(r.Name, n) {
				row.Aliases = r.Aliases
				break
			}
		}
		pool = append(pool, row)
	}
	return pool
}

// RotateGhoibBailiff memilih jurusita dari pool khusus perkara ghoib,
// diranking pakai counter kumulatif tersimpan (bukan turunan riwayat).
// false bila pool tidak punya entri aktif — pemanggil jatuh ke rotasi biasa.
func RotateGhoibBailiff(pool []GhoibBailiffRow) (string, bool) {
	active := make([]GhoibBailiffRow, 0, len(pool))
	for _, b := range pool {
		if b.Active && FlattenName(b.Name) != "" {
			active = append(active, b)
		}
	}
	if len(active) == 0 {
		return "", false
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Counter != active[j].Counter {
			return active[i].Counter < active[j].Counter
		}
		return FlattenName(active[i].Name) < FlattenName(active[j].Name)
	})
	return active[0].Name, true
}
