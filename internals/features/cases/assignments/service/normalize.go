// file: internals/features/cases/assignments/service/normalize.go
package service

import "strings"

/* =========================
   Normalisasi nama
   Nama di SK dan riwayat sering ditulis beda gelar:
   "Drs. Ahmad Fauzi, S.H., M.H." vs "Ahmad Fauzi".
========================= */

// Gelar depan (kehormatan/keagamaan), dicocokkan setelah tanda baca dikolaps
var honorificPrefixes = map[string]struct{}{
	"drs": {}, "dra": {}, "dr": {}, "prof": {}, "hj": {}, "kh": {}, "ir": {},
}

// Gelar belakang (akademik/profesi)
var academicSuffixes = map[string]struct{}{
	"sh": {}, "mh": {}, "shi": {}, "mhi": {}, "sag": {}, "mag": {},
	"se": {}, "msi": {}, "mm": {}, "mhum": {}, "msy": {},
}

// Titik dihapus (bukan diganti spasi) supaya "S.H." jadi "sh" dan
// "M.Ag." jadi "mag"; pemisah lain dikolaps jadi spasi.
var punctReplacer = strings.NewReplacer(
	".", "", ",", " ", "'", " ", "’", " ", "-", " ",
	"(", " ", ")", " ", "/", " ",
)

// NormalizeTokens mengubah nama menjadi token lowercase tanpa gelar.
// Token satu huruf dibuang (sisa singkatan gelar seperti "H." atau "A.").
func NormalizeTokens(name string) []string {
	raw := strings.Fields(punctReplacer.Replace(strings.ToLower(name)))

	i := 0
	for i < len(raw) {
		if _, ok := honorificPrefixes[raw[i]]; !ok {
			break
		}
		i++
	}
	j := len(raw)
	for j > i {
		if _, ok := academicSuffixes[raw[j-1]]; !ok {
			break
		}
		j--
	}

	tokens := make([]string, 0, j-i)
	for _, t := range raw[i:j] {
		if len([]rune(t)) <= 1 {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// FlattenName = bentuk kunci map untuk hitung beban (token digabung spasi)
func FlattenName(name string) string {
	return strings.Join(NormalizeTokens(name), " ")
}

// SameName menganggap dua nama orang yang sama bila token yang satu
// merupakan subset dari yang lain (dua arah). Aturan longgar ini disengaja
// supaya varian gelar parsial tetap cocok; risiko false-positive pada nama
// pendek ("Ali" vs "Ali Hasan") diketahui dan dibiarkan — memperketatnya
// butuh keputusan produk, bukan perbaikan diam-diam.
func SameName(a, b string) bool {
	ta := NormalizeTokens(a)
	tb := NormalizeTokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return false
	}
	return tokensSubset(ta, tb) || tokensSubset(tb, ta)
}

func tokensSubset(sub, super []string) bool {
	set := make(map[string]struct{}, len(super))
	for _, t := range super {
		set[t] = struct{}{}
	}
	for _, t := range sub {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}
