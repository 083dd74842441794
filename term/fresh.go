package term

// indexToName maps a zero-based index to the index-th name in the
// enumeration a, b, …, z, aa, ab, …: a bijective base-26 numeral system
// over the lowercase alphabet, least-significant digit extracted first
// and then reversed into display order.
func indexToName(i int) Name {
	i++ // shift to the 1-based bijective numeral system
	var buf []byte
	for i > 0 {
		i--
		buf = append(buf, byte('a'+i%26))
		i /= 26
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return Name(buf)
}

// FreshName returns the smallest-indexed name in the enumeration of §4.3
// that is not a member of avoid. The same avoid set always yields the
// same name.
func FreshName(avoid Set) Name {
	for i := 0; ; i++ {
		n := indexToName(i)
		if !avoid.Has(n) {
			return n
		}
	}
}
