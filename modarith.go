// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256r1

import "math/big"

// This file implements the ModArith component: 256-bit modular arithmetic
// over the two distinct moduli used by the rest of the package, the field
// prime p and the group order n.  FieldVal and ModNScalar (field.go and
// scalar.go) are thin, distinctly-typed wrappers around these functions so
// that a value reduced modulo p can never be passed where one reduced
// modulo n is expected, and vice versa, without an explicit conversion.
//
// The contract is purely arithmetic: every result is an unsigned integer
// reduced into [0, m).  There is no Montgomery or Barrett form here; the
// modulus is fixed-size but unremarkable, and math/big's general-purpose
// routines are fast enough for a verifier that does a handful of these
// per call.

func modAdd(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, m)
}

func modSub(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, m)
}

func modNeg(a, m *big.Int) *big.Int {
	r := new(big.Int).Neg(a)
	return r.Mod(r, m)
}

func modMul(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m)
}

// modPow computes base^exp mod m via the standard binary (square-and-
// multiply) exponentiation that math/big's Exp already implements; it is
// used here both for the Fermat-little-theorem inverse (exp = m-2) and for
// the p ≡ 3 (mod 4) square root shortcut (exp = (p+1)/4).
func modPow(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// modInverse computes a^-1 mod m via Fermat's little theorem (a^(m-2) mod
// m), which is valid whenever m is prime and a is nonzero.  Callers
// guarantee both of those; see the Inverse methods on FieldVal and
// ModNScalar.
func modInverse(a, mMinus2, m *big.Int) *big.Int {
	return modPow(a, mMinus2, m)
}
