// file: internals/features/cases/assignments/service/panel.go
package service

import (
	"log"
	"sort"
	"strings"
)

// PanelResult = hasil pencarian SK majelis untuk seorang ketua
type PanelResult struct {
	ChamberIndex   int      `json:"chamber_index"`
	ChamberLabel   string   `json:"chamber_label"`
	Associate1Name string   `json:"associate1_name"`
	Associate2Name string   `json:"associate2_name"`
	ClerkPool      []string `json:"clerk_pool"`
	BailiffPool    []string `json:"bailiff_pool"`
}

// ResolvePanel mencari SK aktif yang mengikat judgeName sebagai ketua.
// Pencocokan pakai aturan subset token (SameName), bukan string persis.
// Bila lebih dari satu SK aktif cocok — ambiguitas yang memang terjadi di
// lapangan — dipilih deterministik: index majelis terkecil, lalu urutan label.
// Nol kecocokan = (nil, false), bukan error: pemanggil menampilkan
// "anggota/kandidat tidak tersedia", bukan crash.
func ResolvePanel(panels []PanelRow, judgeName string) (*PanelResult, bool) {
	if strings.TrimSpace(judgeName) == "" {
		return nil, false
	}

	matches := make([]PanelRow, 0, 1)
	for _, p := range panels {
		if !p.Active {
			continue
		}
		if SameName(p.PresidingName, judgeName) {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		return nil, false
	}
	if len(matches) > 1 {
		log.Printf("[WARNING] %d SK majelis aktif cocok untuk hakim %q, dipakai index majelis terkecil", len(matches), judgeName)
		sort.SliceStable(matches, func(i, j int) bool {
			if matches[i].ChamberIndex != matches[j].ChamberIndex {
				return matches[i].ChamberIndex < matches[j].ChamberIndex
			}
			return matches[i].ChamberLabel < matches[j].ChamberLabel
		})
	}

	m := matches[0]
	return &PanelResult{
		ChamberIndex:   m.ChamberIndex,
		ChamberLabel:   m.ChamberLabel,
		Associate1Name: m.Associate1Name,
		Associate2Name: m.Associate2Name,
		ClerkPool:      m.ClerkPool,
		BailiffPool:    m.BailiffPool,
	}, true
}
