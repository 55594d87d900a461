// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256r1

import "math/big"

// IsOnCurve reports whether (x, y) satisfies y² ≡ x³ + a·x + b (mod p).
// (0, 0) is not on the curve since b ≠ 0.
func IsOnCurve(x, y *big.Int) bool {
	if x.Sign() < 0 || x.Cmp(fieldPrime) >= 0 || y.Sign() < 0 || y.Cmp(fieldPrime) >= 0 {
		return false
	}

	fx := newFieldVal(x)
	fy := newFieldVal(y)

	var x2, x3, ax, rhs, lhs FieldVal
	x2.Mul(fx, fx)
	x3.Mul(&x2, fx)
	ax.Mul(newFieldVal(curveA), fx)
	rhs.Add(&x3, &ax)
	rhs.Add(&rhs, newFieldVal(curveB))

	lhs.Mul(fy, fy)
	return lhs.Equals(&rhs)
}

// Verify returns whether the signature (r, s) authenticates the digest e
// under the public key (Qx, Qy).
//
//  1. Range-check r and s against [1, n-1].
//  2. Check (Qx, Qy) lies on the curve.
//  3. w = s⁻¹ mod n, u1 = e·w mod n, u2 = r·w mod n.
//  4. Build the precomputed table from (Qx, Qy) and compute
//     (x, _) = MultShamir(T, u1, u2).
//  5. Accept iff x == r, compared directly against the recovered
//     x-coordinate without reducing it modulo n first. This deliberately
//     diverges from a strict implementation for the negligible band
//     n ≤ x < p, where a signature with x in that band would be rejected
//     here but accepted by an implementation that reduces mod n first.
func Verify(Qx, Qy, r, s, e *big.Int) bool {
	if r.Sign() <= 0 || r.Cmp(groupOrder) >= 0 {
		return false
	}
	if s.Sign() <= 0 || s.Cmp(groupOrder) >= 0 {
		return false
	}
	if !IsOnCurve(Qx, Qy) {
		return false
	}

	rN := newModNScalar(r)
	sN := newModNScalar(s)
	eN := newModNScalar(e)

	var w, u1, u2 ModNScalar
	w.Inverse(sN)
	u1.Mul(eN, &w)
	u2.Mul(rN, &w)

	table := newPrecomputedTable(newFieldVal(Qx), newFieldVal(Qy))
	result := MultShamir(table, &u1, &u2)
	if result.IsIdentity() {
		return false
	}

	return result.X.Int().Cmp(r) == 0
}

// Recover implements public key recovery: given a signature
// (r, s), a recovery id v in {0, 1}, and a digest e, it returns the public
// key (Qx, Qy) that would verify under that signature, or (0, 0) if no such
// key exists.
//
//  1. Range-check r, s against [1, n-1] and v against {0, 1}.
//  2. Treat r as the x-coordinate of a candidate point R; solve for its
//     y-coordinate and select the root whose parity matches v.
//  3. Build the table from (r, Ry) and compute
//     Q = MultShamir(T, u1, u2) with u1 = -e·r⁻¹ mod n, u2 = s·r⁻¹ mod n.
func Recover(r, s *big.Int, v int, e *big.Int) (Qx, Qy *big.Int) {
	zero := big.NewInt(0)
	if r.Sign() <= 0 || r.Cmp(groupOrder) >= 0 {
		return zero, zero
	}
	if s.Sign() <= 0 || s.Cmp(groupOrder) >= 0 {
		return zero, zero
	}
	if v != 0 && v != 1 {
		return zero, zero
	}
	if r.Cmp(fieldPrime) >= 0 {
		return zero, zero
	}

	rField := newFieldVal(r)
	var x2, x3, ax, rySquared FieldVal
	x2.Mul(rField, rField)
	x3.Mul(&x2, rField)
	ax.Mul(newFieldVal(curveA), rField)
	rySquared.Add(&x3, &ax)
	rySquared.Add(&rySquared, newFieldVal(curveB))

	ry, ok := new(FieldVal).Sqrt(&rySquared)
	if !ok {
		return zero, zero
	}
	wantOdd := v == 1
	if ry.IsOdd() != wantOdd {
		ry.Negate(ry)
	}

	rN := newModNScalar(r)
	sN := newModNScalar(s)
	eN := newModNScalar(e)

	var w, negE, u1, u2 ModNScalar
	w.Inverse(rN)
	negE.Negate(eN)
	u1.Mul(&negE, &w)
	u2.Mul(sN, &w)

	table := newPrecomputedTable(rField, ry)
	result := MultShamir(table, &u1, &u2)
	if result.IsIdentity() {
		return zero, zero
	}
	return result.X.Int(), result.Y.Int()
}

// GetPublicKey derives the public key for a private scalar: given a
// scalar private key d in [1, n-1], it returns Q = d·G.  It is implemented
// as MultShamir(T, 0, d) against a table built with G as the "P" operand,
// reusing the same scalar multiplication path as Verify and Recover rather
// than a dedicated single-scalar double-and-add loop.
func GetPublicKey(d *big.Int) (Qx, Qy *big.Int) {
	dN := newModNScalar(d)
	zeroScalar := newModNScalar(big.NewInt(0))

	table := newPrecomputedTable(BaseX(), BaseY())
	result := MultShamir(table, zeroScalar, dN)
	return result.X.Int(), result.Y.Int()
}

