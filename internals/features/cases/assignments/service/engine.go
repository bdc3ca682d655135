// file: internals/features/cases/assignments/service/engine.go
package service

import (
	"log"
	"strings"
	"time"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/model"
)

// RotationMode memilih cara rotasi pendukung (PP/JS)
type RotationMode string

const (
	ModeLoad       RotationMode = "load"        // default: beban historis terkecil
	ModeRoundRobin RotationMode = "round_robin" // siklus pasangan per majelis
)

// AssignInput = metadata satu pengajuan perkara
type AssignInput struct {
	CaseNumber        string
	RegistrationDate  time.Time
	Classification    string
	Category          model.ProcessCategory
	ManualJudge       string     // override ketua (dipakai verbatim setelah trim)
	ManualHearingDate *time.Time // override PHS (kalkulator dilewati)
	Mode              RotationMode
}

// AssignResult = keputusan lengkap satu pengajuan plus penanda kondisi
// (panel ketemu/tidak, mode degradasi, override manual) supaya pemanggil
// bisa menampilkan dan mempersist apa adanya. Tidak ada kondisi fatal:
// "tidak ada kandidat" muncul sebagai field kosong, bukan error.
type AssignResult struct {
	JudgeName      string    `json:"judge_name"`
	Associate1Name string    `json:"associate1_name"`
	Associate2Name string    `json:"associate2_name"`
	ClerkName      string    `json:"clerk_name"`
	BailiffName    string    `json:"bailiff_name"`
	ChamberLabel   string    `json:"chamber_label"`
	HearingDate    time.Time `json:"hearing_date"`

	PanelFound      bool         `json:"panel_found"`
	ClerkDegraded   bool         `json:"clerk_degraded"`   // pool SK absen → roster PP penuh
	BailiffDegraded bool         `json:"bailiff_degraded"` // pool SK absen → roster JS penuh
	GhoibPoolUsed   bool         `json:"ghoib_pool_used"`
	JudgeManual     bool         `json:"judge_manual"`
	HearingManual   bool         `json:"hearing_manual"`
	RotationMode    RotationMode `json:"rotation_mode"`
}

// Assign menjalankan pipeline penuh satu pengajuan:
// pilih ketua → cari SK majelis → rotasi PP → rotasi JS → hitung PHS.
// Fungsi murni terhadap snapshot (determinism: snapshot sama → hasil sama);
// satu-satunya mutasi adalah kursor round-robin pada peta milik pemanggil.
func Assign(snap Snapshot, in AssignInput) AssignResult {
	if in.Mode == "" {
		in.Mode = ModeLoad
	}
	if snap.Cursors == nil {
		snap.Cursors = map[string]int{}
	}
	res := AssignResult{RotationMode: in.Mode}

	// 1) ketua majelis
	if manual := strings.TrimSpace(in.ManualJudge); manual != "" {
		res.JudgeName = manual
		res.JudgeManual = true
	} else {
		res.JudgeName = SelectJudge(snap.Judges, snap.History)
	}
	if res.JudgeName == "" {
		log.Printf("[WARNING] tidak ada hakim aktif — perkara %s butuh penetapan manual", in.CaseNumber)
	}

	// 2) SK majelis (anggota tetap + pool kandidat)
	panel, found := ResolvePanel(snap.Panels, res.JudgeName)
	res.PanelFound = found

	var clerkPool, bailiffPool []StaffRow
	if found {
		res.ChamberLabel = panel.ChamberLabel
		res.Associate1Name = panel.Associate1Name
		res.Associate2Name = panel.Associate2Name
		clerkPool = PoolFromNames(panel.ClerkPool, snap.Clerks)
		bailiffPool = PoolFromNames(panel.BailiffPool, snap.Bailiffs)
	} else {
		// mode degradasi: rotasi jatuh ke roster aktif penuh
		if res.JudgeName != "" {
			log.Printf("[WARNING] SK majelis tidak ditemukan untuk hakim %q — rotasi memakai roster penuh (cek SK)", res.JudgeName)
		}
		clerkPool = snap.Clerks
		bailiffPool = snap.Bailiffs
		res.ClerkDegraded = true
		res.BailiffDegraded = true
	}

	// 3) rotasi pendukung
	roundRobin := in.Mode == ModeRoundRobin && found &&
		(len(panel.ClerkPool) > 0 || len(panel.BailiffPool) > 0)
	if roundRobin {
		pos := NextCursor(snap.Cursors, res.ChamberLabel)
		ci, bi := PairSlot(pos)
		res.ClerkName = pickIdx(panel.ClerkPool, ci)
		res.BailiffName = pickIdx(panel.BailiffPool, bi)
	} else {
		res.ClerkName = RotateRole(clerkPool, snap.History, RoleClerk)
		res.BailiffName = RotateRole(bailiffPool, snap.History, RoleBailiff)
	}

	// perkara ghoib: pool jurusita khusus (counter tersimpan) menang,
	// jatuh kembali ke rotasi biasa bila pool kosong
	if in.Category == model.CategoryGhoib {
		if name, ok := RotateGhoibBailiff(snap.GhoibBailiffs); ok {
			res.BailiffName = name
			res.GhoibPoolUsed = true
		}
	}

	// 4) PHS
	if in.ManualHearingDate != nil {
		res.HearingDate = dateOnly(*in.ManualHearingDate)
		res.HearingManual = true
	} else if !in.RegistrationDate.IsZero() {
		sitting := SittingDayOf(snap.Judges, res.JudgeName)
		res.HearingDate = ComputeHearingDate(in.RegistrationDate, in.Category, in.Classification, sitting, snap.Holidays)
	}
	// tanggal daftar kosong → HearingDate dibiarkan zero (baris rusak tidak
	// boleh menghentikan pipeline; pemanggil menampilkan "belum ditetapkan")

	return res
}

func pickIdx(names []string, idx int) string {
	if len(names) == 0 {
		return ""
	}
	if idx >= len(names) {
		idx = 0
	}
	return names[idx]
}
