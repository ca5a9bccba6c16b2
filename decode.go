package ndp

import (
	"math/big"

	"github.com/samber/lo"
)

// Decode maps a satisfying assignment back to the two factor bit-vectors it
// encodes, given the two ordered input-variable lists (MSB to LSB) extracted
// from the DIMACS header.
//
// T is the set of variable indices occurring positively in s; a variable
// occurring only negated, or not occurring at all, is absent from T and its
// bit reads as 0. For each of v1, v2, Decode forms a bit string by testing
// membership of each listed variable in T, in the given order, and
// interprets it as an unbounded-precision unsigned integer.
func Decode(s Assignment, v1, v2 []int) (fact1, fact2 *big.Int) {
	present := make(map[int]struct{}, len(s))
	for _, lit := range s {
		if lit > 0 {
			present[lit] = struct{}{}
		}
	}
	return decodeBits(present, v1), decodeBits(present, v2)
}

func decodeBits(present map[int]struct{}, vars []int) *big.Int {
	bits := lo.Map(vars, func(v int, _ int) byte {
		if _, ok := present[v]; ok {
			return '1'
		}
		return '0'
	})
	result := new(big.Int)
	if len(bits) == 0 {
		return result
	}
	result.SetString(string(bits), 2)
	return result
}
