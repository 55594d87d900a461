// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256r1

import "math/big"

// Fixed parameters of the NIST P-256 (secp256r1) curve y² = x³ + ax + b over
// the field of size p, with base point (Gx, Gy) of order n.  See FIPS 186-3,
// section D.2.3.
var (
	fieldPrime = mustHex("FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF")
	groupOrder = mustHex("FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551")
	curveA     = mustHex("FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFC")
	curveB     = mustHex("5AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604B")
	baseX      = mustHex("6B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296")
	baseY      = mustHex("4FE342E2FE1A7F9B8EE7EB4A7C0F9E162BCE33576B315ECECBB6406837BF51F5")

	// Derived constants used by the Fermat-exponentiation shortcuts in
	// field.go and scalar.go.
	fieldPrimeMinus2   = new(big.Int).Sub(fieldPrime, big.NewInt(2))
	groupOrderMinus2   = new(big.Int).Sub(groupOrder, big.NewInt(2))
	fieldSqrtExponent  = new(big.Int).Rsh(new(big.Int).Add(fieldPrime, big.NewInt(1)), 2) // (p+1)/4
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256r1: invalid curve constant " + s)
	}
	return n
}

// BaseX and BaseY return the affine coordinates of the P-256 generator G.
func BaseX() *FieldVal { return newFieldVal(baseX) }
func BaseY() *FieldVal { return newFieldVal(baseY) }

// GroupOrder returns n, the order of the base point G.
func GroupOrder() *big.Int { return new(big.Int).Set(groupOrder) }

// FieldPrime returns p, the prime modulus of the underlying field.
func FieldPrime() *big.Int { return new(big.Int).Set(fieldPrime) }
