package cryptography

import "math/big"

// BezoutResult holds the Bézout coefficients and gcd of two integers: a*S + b*T = GCD
type BezoutResult struct {
	S   *big.Int
	T   *big.Int
	GCD *big.Int
}

// ExtendedEuclid runs the iterative extended Euclidean algorithm on a and b.
// b is the modulus argument and a the value to invert. If b is zero the result is {1, 0, a}.
// The arguments are not modified.
func ExtendedEuclid(a, b *big.Int) BezoutResult {
	if b.Sign() == 0 {
		return BezoutResult{
			S:   big.NewInt(1),
			T:   big.NewInt(0),
			GCD: new(big.Int).Set(a),
		}
	}

	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		// truncated division, matching the remainder sequence of the textbook algorithm
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, new(big.Int).Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, new(big.Int).Sub(oldS, tmp)

		tmp.Mul(q, t)
		oldT, t = t, new(big.Int).Sub(oldT, tmp)
	}

	return BezoutResult{S: oldS, T: oldT, GCD: oldR}
}
