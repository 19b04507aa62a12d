package regex

// Algebra is a set of functions interpreting the node kinds of an expression
// with results of type R.
type Algebra[R any] struct {
	Empty   func() R
	Letter  func(rune) R
	Epsilon func() R
	Union   func(R, R) R
	Concat  func(R, R) R
	Star    func(R) R
}

// Fold evaluates an expression bottom-up with an algebra.
func Fold[R any](n *Node, alg Algebra[R]) R {
	switch n.Kind {
	case Letter:
		return alg.Letter(n.Letter)
	case Epsilon:
		return alg.Epsilon()
	case Union:
		return alg.Union(Fold(n.Left, alg), Fold(n.Right, alg))
	case Concat:
		return alg.Concat(Fold(n.Left, alg), Fold(n.Right, alg))
	case Star:
		return alg.Star(Fold(n.Left, alg))
	}
	return alg.Empty()
}
