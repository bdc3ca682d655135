// file: internals/features/cases/assignments/service/roundrobin.go
package service

/* =========================
   Mode alternatif: round-robin per majelis.
   Siklus 4 langkah pasangan PP/JS: P1J1 → P2J1 → P1J2 → P2J2.
   Kursor milik pemanggil (peta eksplisit yang dipersist), bukan
   state global proses.
========================= */

// PairSlot menerjemahkan posisi kursor (0..3) ke index kandidat:
// index panitera pengganti (P) dan index jurusita (J) pada pool SK.
func PairSlot(position int) (clerkIdx, bailiffIdx int) {
	pos := position % 4
	if pos < 0 {
		pos += 4
	}
	return pos % 2, pos / 2
}

// NextCursor mengembalikan posisi siklus untuk key lalu memajukan kursor.
// Peta dimutasi di tempat; pemanggil yang menyimpan nilainya kembali
// (satu kali tulis per save perkara).
func NextCursor(cursors map[string]int, key string) int {
	pos := cursors[key] % 4
	if pos < 0 {
		pos += 4
	}
	cursors[key] = pos + 1
	return pos
}
