package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xianjieng-learn/Saef-Sidang-sub000/internals/features/cases/assignments/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeHearingDateBiasa(t *testing.T) {
	// daftar Rabu 1 Jan 2025, hari sidang Rabu:
	// +8 = Kamis 9 Jan, Rabu berikutnya = 15 Jan = tepat plafon +14
	reg := date(2025, time.January, 1)
	got := ComputeHearingDate(reg, model.CategoryBiasa, "", 3, HolidaySet{})
	assert.Equal(t, date(2025, time.January, 15), got)
}

func TestComputeHearingDateBiasaCeilingReadvance(t *testing.T) {
	// hari sidang Selasa: +8 = Kamis 9 Jan, Selasa berikutnya = 14 Jan,
	// masih di bawah plafon 15 Jan → dipakai
	reg := date(2025, time.January, 1)
	got := ComputeHearingDate(reg, model.CategoryBiasa, "", 2, HolidaySet{})
	assert.Equal(t, date(2025, time.January, 14), got)
}

func TestComputeHearingDateBiasaHolidaySkip(t *testing.T) {
	reg := date(2025, time.January, 1)
	holidays := NewHolidaySet(date(2025, time.January, 15))

	// Rabu 15 Jan libur → Rabu berikutnya 22 Jan
	got := ComputeHearingDate(reg, model.CategoryBiasa, "", 3, holidays)
	assert.Equal(t, date(2025, time.January, 22), got)
}

func TestComputeHearingDateNoSittingDay(t *testing.T) {
	// hari sidang belum ditetapkan: offset dipakai apa adanya,
	// libur TIDAK dilompati (tidak ada hari tetap untuk dicari maju)
	reg := date(2025, time.January, 1)
	holidays := NewHolidaySet(date(2025, time.January, 9))

	got := ComputeHearingDate(reg, model.CategoryBiasa, "", 0, holidays)
	assert.Equal(t, date(2025, time.January, 9), got)
}

func TestComputeHearingDateIstbat(t *testing.T) {
	reg := date(2025, time.January, 1)
	got := ComputeHearingDate(reg, model.CategoryIstbat, "", 0, HolidaySet{})
	assert.Equal(t, date(2025, time.January, 22), got)
}

func TestComputeHearingDateGhoib(t *testing.T) {
	reg := date(2025, time.January, 1)

	// cerai (CT/CG): 4 bulan masa panggilan = +124 hari
	got := ComputeHearingDate(reg, model.CategoryGhoib, "CG", 0, HolidaySet{})
	assert.Equal(t, date(2025, time.May, 5), got)

	got = ComputeHearingDate(reg, model.CategoryGhoib, "ct", 0, HolidaySet{})
	assert.Equal(t, date(2025, time.May, 5), got, "klasifikasi tidak peka kapital")

	// ghoib non-cerai: +31
	got = ComputeHearingDate(reg, model.CategoryGhoib, "P", 0, HolidaySet{})
	assert.Equal(t, date(2025, time.February, 1), got)
}

func TestComputeHearingDateRogatoriDanMafqud(t *testing.T) {
	reg := date(2025, time.January, 1)

	got := ComputeHearingDate(reg, model.CategoryRogatori, "", 0, HolidaySet{})
	assert.Equal(t, date(2025, time.May, 5), got)

	got = ComputeHearingDate(reg, model.CategoryMafqud, "", 0, HolidaySet{})
	assert.Equal(t, date(2025, time.September, 4), got)
}

func TestComputeHearingDateAdvancesToSittingDay(t *testing.T) {
	// istbat +21 = Rabu 22 Jan; hari sidang Senin → Senin 27 Jan
	reg := date(2025, time.January, 1)
	got := ComputeHearingDate(reg, model.CategoryIstbat, "", 1, HolidaySet{})
	assert.Equal(t, date(2025, time.January, 27), got)
}

func TestComputeHearingDateUnknownCategoryFallsBackToBiasa(t *testing.T) {
	reg := date(2025, time.January, 1)
	got := ComputeHearingDate(reg, model.ProcessCategory("aneh"), "", 3, HolidaySet{})
	assert.Equal(t, date(2025, time.January, 15), got, "kategori tak dikenal tidak boleh memblokir pipeline")
}

func TestIsoWeekday(t *testing.T) {
	assert.Equal(t, 1, isoWeekday(date(2025, time.January, 6)), "Senin")
	assert.Equal(t, 3, isoWeekday(date(2025, time.January, 1)), "Rabu")
	assert.Equal(t, 7, isoWeekday(date(2025, time.January, 5)), "Minggu")
}
