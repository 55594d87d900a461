// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256r1

import "math/big"

// ModNScalar represents an element of Fn, the field of integers modulo the
// order n of the P-256 base point.  It is a distinct Go type from FieldVal
// so that the type system itself enforces that Fp and Fn values are never
// mixed: a ModNScalar cannot be passed where a FieldVal is expected without
// an explicit, visible conversion.
type ModNScalar struct {
	n *big.Int
}

func newModNScalar(n *big.Int) *ModNScalar {
	return &ModNScalar{n: new(big.Int).Mod(n, groupOrder)}
}

// SetBytes interprets buf as a 32-byte big-endian unsigned integer and sets
// s to its value reduced modulo n, returning 1 if the value overflowed (was
// >= n before reduction) or 0 otherwise.
func (s *ModNScalar) SetBytes(buf *[32]byte) uint32 {
	v := new(big.Int).SetBytes(buf[:])
	overflow := uint32(0)
	if v.Cmp(groupOrder) >= 0 {
		overflow = 1
	}
	s.n = v.Mod(v, groupOrder)
	return overflow
}

// SetByteSlice behaves like SetBytes but accepts a variable-length slice.
func (s *ModNScalar) SetByteSlice(buf []byte) uint32 {
	v := new(big.Int).SetBytes(buf)
	overflow := uint32(0)
	if v.Cmp(groupOrder) >= 0 {
		overflow = 1
	}
	s.n = v.Mod(v, groupOrder)
	return overflow
}

// Set sets s equal to other and returns s.
func (s *ModNScalar) Set(other *ModNScalar) *ModNScalar {
	s.n = new(big.Int).Set(other.n)
	return s
}

// Bytes returns s as a 32-byte big-endian array.
func (s *ModNScalar) Bytes() [32]byte {
	var out [32]byte
	s.n.FillBytes(out[:])
	return out
}

// Int returns the value of s as a *big.Int.  The caller must not mutate the
// result.
func (s *ModNScalar) Int() *big.Int {
	return s.n
}

// IsZero reports whether s is the zero element of Fn.
func (s *ModNScalar) IsZero() bool {
	return s.n.Sign() == 0
}

// Equals reports whether s and other represent the same element of Fn.
func (s *ModNScalar) Equals(other *ModNScalar) bool {
	return s.n.Cmp(other.n) == 0
}

// Add sets s = a + b mod n and returns s.
func (s *ModNScalar) Add(a, b *ModNScalar) *ModNScalar {
	s.n = modAdd(a.n, b.n, groupOrder)
	return s
}

// Sub sets s = a - b mod n and returns s.
func (s *ModNScalar) Sub(a, b *ModNScalar) *ModNScalar {
	s.n = modSub(a.n, b.n, groupOrder)
	return s
}

// Negate sets s = -a mod n and returns s.
func (s *ModNScalar) Negate(a *ModNScalar) *ModNScalar {
	s.n = modNeg(a.n, groupOrder)
	return s
}

// Mul sets s = a * b mod n and returns s.
func (s *ModNScalar) Mul(a, b *ModNScalar) *ModNScalar {
	s.n = modMul(a.n, b.n, groupOrder)
	return s
}

// Pow sets s = base^exp mod n and returns s.
func (s *ModNScalar) Pow(base *ModNScalar, exp *big.Int) *ModNScalar {
	s.n = modPow(base.n, exp, groupOrder)
	return s
}

// Inverse sets s = a^-1 mod n and returns s, computed as a^(n-2) mod n per
// Fermat's little theorem.  Defined only when a is nonzero; n is prime.
func (s *ModNScalar) Inverse(a *ModNScalar) *ModNScalar {
	s.n = modInverse(a.n, groupOrderMinus2, groupOrder)
	return s
}
