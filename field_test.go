// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256r1

import (
	"math/big"
	"testing"
)

func hexField(t *testing.T, s string) *FieldVal {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("bad hex constant %q", s)
	}
	return newFieldVal(v)
}

func TestFieldValAddSubNegate(t *testing.T) {
	var a, b, sum, diff, neg FieldVal
	a.SetInt(5)
	b.SetInt(3)

	sum.Add(&a, &b)
	if sum.Int().Cmp(big.NewInt(8)) != 0 {
		t.Fatalf("5+3 = %s, want 8", sum.Int())
	}

	diff.Sub(&a, &b)
	if diff.Int().Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("5-3 = %s, want 2", diff.Int())
	}

	neg.Negate(&a)
	var check FieldVal
	check.Add(&a, &neg)
	if !check.IsZero() {
		t.Fatalf("a + (-a) = %s, want 0", check.Int())
	}
}

func TestFieldValMulMatchesBigInt(t *testing.T) {
	a := hexField(t, "1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcd")
	b := hexField(t, "fedcba0987654321fedcba0987654321fedcba0987654321fedcba09876543")

	var got FieldVal
	got.Mul(a, b)

	want := new(big.Int).Mul(a.Int(), b.Int())
	want.Mod(want, fieldPrime)
	if got.Int().Cmp(want) != 0 {
		t.Fatalf("Mul = %x, want %x", got.Int(), want)
	}
}

func TestFieldValInverse(t *testing.T) {
	var two, inv, check FieldVal
	two.SetInt(2)
	inv.Inverse(&two)

	want := hexField(t, "7fffffff80000000800000000000000000000000800000000000000000000000")
	if !inv.Equals(want) {
		t.Fatalf("inverse(2) = %x, want %x", inv.Int(), want.Int())
	}

	check.Mul(&two, &inv)
	one := new(FieldVal)
	one.SetInt(1)
	if !check.Equals(one) {
		t.Fatalf("2 * inverse(2) = %x, want 1", check.Int())
	}
}

func TestFieldValSqrtRoundTrip(t *testing.T) {
	tests := []*big.Int{
		big.NewInt(4),
		big.NewInt(9),
		new(big.Int).Set(fieldPrime),
	}
	tests[2].Sub(tests[2], big.NewInt(1)) // p-1

	for _, v := range tests {
		a := newFieldVal(v)
		root, ok := new(FieldVal).Sqrt(a)
		if !ok {
			// p-1 is a QR iff -1 is a QR mod p; for P-256's prime it is not,
			// so that case is expected to fail and is exercised by
			// TestFieldValSqrtNonResidue below instead.
			continue
		}
		var squared FieldVal
		squared.Mul(root, root)
		if !squared.Equals(a) {
			t.Fatalf("sqrt(%x)^2 = %x, want %x", a.Int(), squared.Int(), a.Int())
		}
	}
}

func TestFieldValSqrtKnownValue(t *testing.T) {
	var four FieldVal
	four.SetInt(4)
	root, ok := new(FieldVal).Sqrt(&four)
	if !ok {
		t.Fatal("sqrt(4) reported no root")
	}
	var two, negTwo FieldVal
	two.SetInt(2)
	negTwo.Negate(&two)
	if !root.Equals(&two) && !root.Equals(&negTwo) {
		t.Fatalf("sqrt(4) = %x, want 2 or p-2", root.Int())
	}
}

func TestFieldValSqrtNonResidue(t *testing.T) {
	// p-1 (that is, -1) is a quadratic non-residue modulo the P-256 field
	// prime, since p ≡ 3 (mod 4).
	minusOne := newFieldVal(new(big.Int).Sub(fieldPrime, big.NewInt(1)))
	if _, ok := new(FieldVal).Sqrt(minusOne); ok {
		t.Fatal("sqrt(p-1) unexpectedly reported a root")
	}
}

func TestFieldValBytesRoundTrip(t *testing.T) {
	orig := hexField(t, "00112233445566778899aabbccddeeff00112233445566778899aabbccddee")
	buf := orig.Bytes()

	var restored FieldVal
	restored.SetBytes(&buf)
	if !restored.Equals(orig) {
		t.Fatalf("round trip mismatch: got %x, want %x", restored.Int(), orig.Int())
	}
}

func TestFieldValReducesOnConstruction(t *testing.T) {
	over := new(big.Int).Add(fieldPrime, big.NewInt(7))
	f := newFieldVal(over)
	if f.Int().Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("p+7 reduced to %s, want 7", f.Int())
	}
}
