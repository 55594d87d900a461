// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256r1

// This file implements the JacobianPoint component: point doubling and
// point addition in Jacobian projective coordinates (X, Y, Z), where the
// affine point is (X/Z², Y/Z³) for Z ≠ 0, and conversion back to affine.
//
// The formulas used here are the direct doubling/addition laws rather than
// a general elliptic-curve-formula-database addition law: Add does not
// special-case
// H = 0 (a doubling in disguise) or H = 0 ∧ R ≠ 0 (one operand negates the
// other).  With H = 0 the result has Z = 0, so Add returns the identity:
// correct when one operand negates the other, wrong when the operands are
// equal.  The Shamir loop in shamir.go does not add a point to itself.  A
// table built by table.go with P equal to G (as GetPublicKey builds it)
// does hold such sums, e.g. T[5] = G + G, but only at indices whose two
// 2-bit halves are both nonzero, which MultShamir never reads when one of
// its two scalars is zero.

// AffinePoint is a point in ordinary (x, y) coordinates.  (0, 0) is
// reserved to mean "no point" (identity or failure); it is never a point
// satisfying y² = x³ + ax + b since b ≠ 0.
type AffinePoint struct {
	X, Y FieldVal
}

// IsIdentity reports whether p is the sentinel (0, 0) "no point" value.
func (p *AffinePoint) IsIdentity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// JacobianPoint is a point (X, Y, Z) representing the affine point
// (X/Z², Y/Z³) when Z ≠ 0, or the point at infinity when Z = 0.  The
// canonical identity is the all-zero triple.
type JacobianPoint struct {
	X, Y, Z FieldVal
}

// identityJacobian returns the canonical point at infinity (0, 0, 0).
func identityJacobian() JacobianPoint {
	var p JacobianPoint
	p.X.SetInt(0)
	p.Y.SetInt(0)
	p.Z.SetInt(0)
	return p
}

// IsIdentity reports whether p has Z = 0, i.e. represents the point at
// infinity regardless of its X and Y.
func (p *JacobianPoint) IsIdentity() bool {
	return p.Z.IsZero()
}

// jacobianFromAffine lifts an affine point to Jacobian coordinates with
// Z = 1.  The caller is responsible for ensuring (x, y) is actually on the
// curve; this function performs no validation.
func jacobianFromAffine(x, y *FieldVal) JacobianPoint {
	var p JacobianPoint
	p.X.Set(x)
	p.Y.Set(y)
	p.Z.SetInt(1)
	return p
}

// DoubleJacobian returns 2·p in Jacobian coordinates:
//
//	S = 4·X·Y²
//	M = 3·X² + a·Z⁴
//	X' = M² - 2·S
//	Y' = M·(S - X') - 8·Y⁴
//	Z' = 2·Y·Z
func DoubleJacobian(p *JacobianPoint) JacobianPoint {
	if p.IsIdentity() {
		return identityJacobian()
	}

	var x2, y2, z2, z4, a, t1, t2, s, m, xOut, yOut, zOut FieldVal
	x2.Mul(&p.X, &p.X)
	y2.Mul(&p.Y, &p.Y)
	z2.Mul(&p.Z, &p.Z)
	z4.Mul(&z2, &z2)
	a.Set(curveAField())

	// S = 4·X·Y²
	s.Mul(&p.X, &y2)
	t1.Add(&s, &s)
	s.Add(&t1, &t1)

	// M = 3·X² + a·Z⁴
	t1.Add(&x2, &x2)
	t1.Add(&t1, &x2)
	t2.Mul(&a, &z4)
	m.Add(&t1, &t2)

	// X' = M² - 2·S
	t1.Mul(&m, &m)
	t2.Add(&s, &s)
	xOut.Sub(&t1, &t2)

	// Y' = M·(S - X') - 8·Y⁴
	t1.Sub(&s, &xOut)
	t1.Mul(&m, &t1)
	t2.Mul(&y2, &y2)
	t2.Add(&t2, &t2)
	t2.Add(&t2, &t2)
	t2.Add(&t2, &t2)
	yOut.Sub(&t1, &t2)

	// Z' = 2·Y·Z
	t1.Mul(&p.Y, &p.Z)
	zOut.Add(&t1, &t1)

	var out JacobianPoint
	out.X, out.Y, out.Z = xOut, yOut, zOut
	return out
}

// AddJacobian returns p+q in Jacobian coordinates:
//
//	U1 = X1·Z2², U2 = X2·Z1², S1 = Y1·Z2³, S2 = Y2·Z1³
//	H = U2 - U1, R = S2 - S1
//	X3 = R² - H³ - 2·U1·H²
//	Y3 = R·(U1·H² - X3) - S1·H³
//	Z3 = H·Z1·Z2
//
// If either operand is the point at infinity, the other is returned
// unchanged.  As documented at the top of this file, this does not handle
// H = 0: for two equal operands it returns the identity, not their double.
func AddJacobian(p, q *JacobianPoint) JacobianPoint {
	if p.IsIdentity() {
		return *q
	}
	if q.IsIdentity() {
		return *p
	}

	var z1z1, z2z2, u1, u2, z1cubed, z2cubed, s1, s2 FieldVal
	z1z1.Mul(&p.Z, &p.Z)
	z2z2.Mul(&q.Z, &q.Z)
	u1.Mul(&p.X, &z2z2)
	u2.Mul(&q.X, &z1z1)
	z1cubed.Mul(&z1z1, &p.Z)
	z2cubed.Mul(&z2z2, &q.Z)
	s1.Mul(&p.Y, &z2cubed)
	s2.Mul(&q.Y, &z1cubed)

	var h, r, h2, h3, t1, t2, xOut, yOut, zOut FieldVal
	h.Sub(&u2, &u1)
	r.Sub(&s2, &s1)
	h2.Mul(&h, &h)
	h3.Mul(&h2, &h)

	// X3 = R² - H³ - 2·U1·H²
	t1.Mul(&r, &r)
	t1.Sub(&t1, &h3)
	t2.Mul(&u1, &h2)
	t2.Add(&t2, &t2)
	xOut.Sub(&t1, &t2)

	// Y3 = R·(U1·H² - X3) - S1·H³
	t1.Mul(&u1, &h2)
	t1.Sub(&t1, &xOut)
	t1.Mul(&r, &t1)
	t2.Mul(&s1, &h3)
	yOut.Sub(&t1, &t2)

	// Z3 = H·Z1·Z2
	zOut.Mul(&h, &p.Z)
	zOut.Mul(&zOut, &q.Z)

	var out JacobianPoint
	out.X, out.Y, out.Z = xOut, yOut, zOut
	return out
}

// ToAffine converts p to affine coordinates: if Z = 0 it returns (0, 0);
// otherwise it computes Z⁻¹ mod p and returns (X·Z⁻², Y·Z⁻³).
func (p *JacobianPoint) ToAffine() AffinePoint {
	if p.IsIdentity() {
		var out AffinePoint
		out.X.SetInt(0)
		out.Y.SetInt(0)
		return out
	}

	var zInv, zInv2, zInv3 FieldVal
	zInv.Inverse(&p.Z)
	zInv2.Mul(&zInv, &zInv)
	zInv3.Mul(&zInv2, &zInv)

	var out AffinePoint
	out.X.Mul(&p.X, &zInv2)
	out.Y.Mul(&p.Y, &zInv3)
	return out
}

// curveAField returns the curve coefficient a as a FieldVal.  It is
// recomputed on each call rather than cached as a package-level FieldVal so
// that FieldVal's zero value is never relied upon as "the constant a";
// DoubleJacobian, its only caller, calls it once per doubling.
func curveAField() *FieldVal {
	return newFieldVal(curveA)
}
