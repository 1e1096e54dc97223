package fuzzy

import "math"

// TriangularNumber is a triangular fuzzy number (l, m, u): lower bound,
// most likely value and upper bound. l <= m <= u holds for well formed
// numbers but is not enforced by the arithmetic below.
type TriangularNumber struct {
	L float64 `json:"l" yaml:"l"`
	M float64 `json:"m" yaml:"m"`
	U float64 `json:"u" yaml:"u"`
}

// Zero is the fuzzy zero (0, 0, 0).
var Zero = TriangularNumber{}

// fold seeds
var (
	PositiveInfinity = TriangularNumber{L: math.Inf(1), M: math.Inf(1), U: math.Inf(1)}
	NegativeInfinity = TriangularNumber{L: math.Inf(-1), M: math.Inf(-1), U: math.Inf(-1)}
)

// New builds a triangular number from its three components.
func New(l, m, u float64) TriangularNumber {
	return TriangularNumber{L: l, M: m, U: u}
}

// Add: (a,b,c) + (d,e,f) = (a+d, b+e, c+f)
func Add(a, b TriangularNumber) TriangularNumber {
	return TriangularNumber{L: a.L + b.L, M: a.M + b.M, U: a.U + b.U}
}

// Subtract is fuzzy subtraction: (a,b,c) - (d,e,f) = (a-f, b-e, c-d).
// The bounds cross over, so Subtract(a, a) is not zero unless a is crisp.
func Subtract(a, b TriangularNumber) TriangularNumber {
	return TriangularNumber{L: a.L - b.U, M: a.M - b.M, U: a.U - b.L}
}

// Multiply is the approximate fuzzy product (a*d, b*e, c*f).
func Multiply(a, b TriangularNumber) TriangularNumber {
	return TriangularNumber{L: a.L * b.L, M: a.M * b.M, U: a.U * b.U}
}

// Scale multiplies every component by k.
func Scale(a TriangularNumber, k float64) TriangularNumber {
	return TriangularNumber{L: a.L * k, M: a.M * k, U: a.U * k}
}

// Divide divides every component by k. Division by zero yields Zero
// instead of Inf or NaN so that downstream folds stay defined.
func Divide(a TriangularNumber, k float64) TriangularNumber {
	if k == 0 {
		return Zero
	}

	return TriangularNumber{L: a.L / k, M: a.M / k, U: a.U / k}
}

// Max is the componentwise maximum. It is not an ordering of fuzzy numbers.
func Max(a, b TriangularNumber) TriangularNumber {
	return TriangularNumber{
		L: math.Max(a.L, b.L),
		M: math.Max(a.M, b.M),
		U: math.Max(a.U, b.U),
	}
}

// Min is the componentwise minimum.
func Min(a, b TriangularNumber) TriangularNumber {
	return TriangularNumber{
		L: math.Min(a.L, b.L),
		M: math.Min(a.M, b.M),
		U: math.Min(a.U, b.U),
	}
}

// Defuzzify converts a to a crisp value with (l + 2m + u) / 4.
func Defuzzify(a TriangularNumber) float64 {
	return (a.L + 2*a.M + a.U) / 4
}

// Fold reduces values left to right starting from seed.
func Fold(values []TriangularNumber, seed TriangularNumber,
	op func(acc, next TriangularNumber) TriangularNumber) TriangularNumber {
	acc := seed
	for _, v := range values {
		acc = op(acc, v)
	}

	return acc
}

// Sum is Fold with Add seeded by Zero.
func Sum(values []TriangularNumber) TriangularNumber {
	return Fold(values, Zero, Add)
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func ApproxEqual(a, b TriangularNumber, eps float64) bool {
	return math.Abs(a.L-b.L) <= eps &&
		math.Abs(a.M-b.M) <= eps &&
		math.Abs(a.U-b.U) <= eps
}

// IsFinite reports whether no component is NaN or infinite.
func (t TriangularNumber) IsFinite() bool {
	for _, v := range [3]float64{t.L, t.M, t.U} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
