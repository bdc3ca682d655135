// file: internals/features/cases/assignments/service/hearing.go
package service

import (
	"strings"
	"time"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/model"
)

/* =========================
   Perhitungan hari sidang (PHS)
   Offset minimum ditentukan undang-undang per jalur proses,
   lalu dimajukan ke hari sidang majelis dengan melompati hari libur.
========================= */

const (
	offsetBiasaMin = 8   // perkara biasa: minimal hari ke-8
	offsetBiasaMax = 14  // ... dengan plafon hari ke-14
	offsetIstbat   = 21  // istbat nikah
	offsetGhoibCT  = 124 // ghoib cerai (CT/CG): 4 bulan panggilan
	offsetGhoib    = 31  // ghoib selain cerai
	offsetRogatori = 124 // tabayun / rogatori
	offsetMafqud   = 246 // mafqud
)

// ComputeHearingDate menghitung tanggal sidang pertama.
// sittingDay = hari sidang ISO (1..7) ketua majelis; 0 berarti belum
// ditetapkan → tanggal kandidat dipakai apa adanya TANPA lompat libur
// (tidak ada hari tetap yang bisa dicari maju).
func ComputeHearingDate(reg time.Time, cat model.ProcessCategory, classification string, sittingDay int, holidays HolidaySet) time.Time {
	reg = dateOnly(reg)

	switch cat {
	case model.CategoryIstbat:
		return advanceFrom(reg, offsetIstbat, sittingDay, holidays)

	case model.CategoryGhoib:
		off := offsetGhoib
		cls := strings.ToUpper(strings.TrimSpace(classification))
		if cls == "CT" || cls == "CG" {
			off = offsetGhoibCT
		}
		return advanceFrom(reg, off, sittingDay, holidays)

	case model.CategoryRogatori:
		return advanceFrom(reg, offsetRogatori, sittingDay, holidays)

	case model.CategoryMafqud:
		return advanceFrom(reg, offsetMafqud, sittingDay, holidays)

	default:
		// biasa (kategori tak dikenal diperlakukan sama, jangan memblokir pipeline)
		base := reg.AddDate(0, 0, offsetBiasaMin)
		if sittingDay == 0 {
			return base
		}
		target := nextSittingDay(base, sittingDay, holidays)
		ceiling := reg.AddDate(0, 0, offsetBiasaMax)
		if target.After(ceiling) {
			target = nextSittingDay(ceiling, sittingDay, holidays)
		}
		return target
	}
}

func advanceFrom(reg time.Time, offsetDays, sittingDay int, holidays HolidaySet) time.Time {
	base := reg.AddDate(0, 0, offsetDays)
	if sittingDay == 0 {
		return base
	}
	return nextSittingDay(base, sittingDay, holidays)
}

// nextSittingDay = tanggal terkecil >= from yang jatuh di hari sidang
// dan bukan hari libur. Batas cari dua tahun sebagai pengaman.
func nextSittingDay(from time.Time, sittingDay int, holidays HolidaySet) time.Time {
	d := from
	for i := 0; i < 740; i++ {
		if isoWeekday(d) == sittingDay && !holidays.Contains(d) {
			return d
		}
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// isoWeekday: Senin=1 .. Minggu=7
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
