package regex

import (
	"math"
)

// none marks a missing length
const none = math.MaxInt

// prefixInfo is the intermediate result of PrefixedMin for a sub-expression.
// For n = 0…k, exact[n] is true if x^n is in the language and minLen[n] is the
// length of the shortest word x^n·w in the language.
type prefixInfo struct {
	exact  []bool
	minLen []int
}

// PrefixedMin computes the length of the shortest word of the language of n which
// starts with count repetitions of letter x. If there is no such word, ok is false.
func PrefixedMin(n *Node, x rune, count int) (length int, ok bool) {
	if count < 0 {
		count = 0
	}
	alg := prefixAlgebra(x, count)
	info := Fold(n, alg)
	if info.minLen[count] == none {
		return 0, false
	}
	return info.minLen[count], true
}

// PrefixedMinRPN is PrefixedMin for an expression in reverse Polish notation.
func PrefixedMinRPN(rpn string, x rune, count int) (int, bool, error) {
	n, err := ParseRPN(rpn)
	if err != nil {
		return 0, false, err
	}
	length, ok := PrefixedMin(n, x, count)
	return length, ok, nil
}

func prefixAlgebra(x rune, k int) Algebra[prefixInfo] {
	empty := func() prefixInfo {
		info := prefixInfo{exact: make([]bool, k+1), minLen: make([]int, k+1)}
		for i := range info.minLen {
			info.minLen[i] = none
		}
		return info
	}
	epsilon := func() prefixInfo {
		info := empty()
		info.exact[0] = true
		info.minLen[0] = 0
		return info
	}
	union := func(a, b prefixInfo) prefixInfo {
		u := empty()
		for i := 0; i <= k; i++ {
			u.exact[i] = a.exact[i] || b.exact[i]
			u.minLen[i] = min(a.minLen[i], b.minLen[i])
		}
		return u
	}
	concat := func(a, b prefixInfo) prefixInfo {
		c := empty()
		for n := 0; n <= k; n++ {
			for left := 0; left <= n; left++ {
				if !a.exact[left] {
					continue
				}
				if b.exact[n-left] {
					c.exact[n] = true
				}
				if b.minLen[n-left] != none {
					c.minLen[n] = min(c.minLen[n], left+b.minLen[n-left])
				}
			}
			// x^n is a prefix of the left word already
			if a.minLen[n] != none && b.minLen[0] != none {
				c.minLen[n] = min(c.minLen[n], a.minLen[n]+b.minLen[0])
			}
		}
		return c
	}
	return Algebra[prefixInfo]{
		Empty: empty,
		Letter: func(r rune) prefixInfo {
			info := empty()
			info.minLen[0] = 1
			if r == x && k > 0 {
				info.exact[1] = true
				info.minLen[1] = 1
			}
			return info
		},
		Epsilon: epsilon,
		Union:   union,
		Concat:  concat,
		Star: func(a prefixInfo) prefixInfo {
			// more than k repetitions cannot contribute to a prefix x^k
			result, power := epsilon(), a
			for i := 0; i < k; i++ {
				result = union(result, power)
				power = concat(power, a)
			}
			return result
		},
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
