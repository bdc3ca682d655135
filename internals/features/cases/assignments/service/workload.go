// file: internals/features/cases/assignments/service/workload.go
package service

import "github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/model"

// RoleColumn memilih kolom peran pada riwayat penetapan
type RoleColumn int

const (
	RoleJudge RoleColumn = iota
	RoleAssociate
	RoleClerk
	RoleBailiff
)

// CountLoads menghitung berapa kali tiap nama (ternormalisasi) muncul di
// kolom peran pada seluruh riwayat yang diberikan. Riwayat kosong atau baris
// rusak (nama kosong) menghasilkan map kosong / di-skip: hilir memperlakukan
// kandidat tanpa entri sebagai beban nol.
func CountLoads(history []HistoryEntry, col RoleColumn) map[string]int {
	loads := make(map[string]int)
	for _, h := range history {
		for _, name := range h.roleNames(col) {
			key := FlattenName(name)
			if key == "" {
				continue
			}
			loads[key]++
		}
	}
	return loads
}

// FilterByCategory menyaring riwayat per kategori proses; dipakai pemanggil
// sebelum CountLoads bila butuh hitungan per-kategori (mis. rekap ghoib).
func FilterByCategory(history []HistoryEntry, cat model.ProcessCategory) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(history))
	for _, h := range history {
		if h.Category == cat {
			out = append(out, h)
		}
	}
	return out
}

func (h HistoryEntry) roleNames(col RoleColumn) []string {
	switch col {
	case RoleJudge:
		return []string{h.JudgeName}
	case RoleAssociate:
		return []string{h.Associate1Name, h.Associate2Name}
	case RoleClerk:
		return []string{h.ClerkName}
	case RoleBailiff:
		return []string{h.BailiffName}
	}
	return nil
}
