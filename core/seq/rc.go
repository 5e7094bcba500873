// core/seq/rc.go
package seq

var complement [256]byte

func init() {
	pairs := [][2]byte{
		{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'},
		{'R', 'Y'}, {'Y', 'R'},
		{'S', 'S'}, {'W', 'W'},
		{'K', 'M'}, {'M', 'K'},
		{'B', 'V'}, {'V', 'B'},
		{'D', 'H'}, {'H', 'D'},
		{'N', 'N'},
	}
	for _, p := range pairs {
		complement[p[0]] = p[1]
		complement[p[0]|0x20] = p[1] | 0x20 // preserve case
	}
}

// RevComp returns the reverse complement of a DNA sequence. Case is
// preserved and bytes without an IUPAC complement pass through unchanged.
func RevComp(s string) string {
	n := len(s)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := s[n-1-i]
		c := complement[b]
		if c == 0 {
			c = b
		}
		out[i] = c
	}
	return string(out)
}
