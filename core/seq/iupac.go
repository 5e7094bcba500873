// core/seq/iupac.go
package seq

/* -------------------------- IUPAC lookup tables -------------------------- */

// iupacMask holds the 4-bit base set for every IUPAC code,
// bit0=A bit1=C bit2=G bit3=T. Upper and lower case share entries.
var iupacMask [256]byte

// acgtMask is the genome-side gate: only the four canonical bases
// carry a non-zero mask here. 'N' and everything else stay zero.
var acgtMask [256]byte

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		iupacMask[c|0x20] = bits // lower case
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any (primer side only)

	for _, c := range []byte{'A', 'C', 'G', 'T'} {
		acgtMask[c] = iupacMask[c]
		acgtMask[c|0x20] = iupacMask[c]
	}
}

// BaseMatch reports whether primer base p (IUPAC) can pair with genome
// base g. A genome base of 'N' (or any non-ACGT byte) is a hard mismatch:
// the gate fires before the mask AND, so even primer 'N' cannot pair with
// genomic 'N'. This keeps N-blocks in assemblies from scoring as hits.
func BaseMatch(g, p byte) bool {
	gm := acgtMask[g]
	if gm == 0 {
		return false
	}
	return iupacMask[p]&gm != 0
}
