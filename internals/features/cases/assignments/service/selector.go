// file: internals/features/cases/assignments/service/selector.go
package service

import "sort"

// SelectJudge memilih ketua majelis berbeban terkecil di antara hakim aktif.
// Tie-break deterministik: urutan roster SK, lalu nama ternormalisasi —
// dua snapshot identik selalu menghasilkan hakim yang sama.
// Tidak ada hakim aktif = string kosong (kondisi wajar, bukan error).
func SelectJudge(judges []JudgeRow, history []HistoryEntry) string {
	active := make([]JudgeRow, 0, len(judges))
	for _, j := range judges {
		if j.Active && FlattenName(j.Name) != "" {
			active = append(active, j)
		}
	}
	if len(active) == 0 {
		return ""
	}

	loads := CountLoads(history, RoleJudge)
	sort.SliceStable(active, func(i, j int) bool {
		li := loads[FlattenName(active[i].Name)]
		lj := loads[FlattenName(active[j].Name)]
		if li != lj {
			return li < lj
		}
		if active[i].RosterIndex != active[j].RosterIndex {
			return active[i].RosterIndex < active[j].RosterIndex
		}
		return FlattenName(active[i].Name) < FlattenName(active[j].Name)
	})
	return active[0].Name
}

// SittingDayOf mencari hari sidang (ISO 1..7) hakim bernama judgeName;
// 0 bila hakim tidak ditemukan di roster atau harinya belum ditetapkan.
func SittingDayOf(judges []JudgeRow, judgeName string) int {
	for _, j := range judges {
		if SameName(j.Name, judgeName) {
			return j.SittingDay
		}
	}
	return 0
}
