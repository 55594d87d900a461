// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256r1

// MultShamir computes u1·G + u2·P as an affine point using the
// Strauss-Shamir simultaneous scalar multiplication technique: 128
// iterations, each consuming the next two bits of u1 and u2 (most
// significant first), doubling the accumulator twice per iteration and
// adding the table entry selected by the 4-bit window.
//
// Doubling twice per iteration matches the two-bit window; the 16-entry
// table absorbs all four combinations of G- and P-weights the window can
// select, so the hot loop performs at most one table-indexed addition per
// iteration rather than two separate double-and-add passes over u1 and u2.
func MultShamir(t *PrecomputedTable, u1, u2 *ModNScalar) AffinePoint {
	u1Bytes := u1.Bytes()
	u2Bytes := u2.Bytes()

	acc := identityJacobian()
	for i := 0; i < 128; i++ {
		if !acc.IsIdentity() {
			doubled := DoubleJacobian(&acc)
			acc = DoubleJacobian(&doubled)
		}

		a := twoBitWindow(&u1Bytes, i)
		b := twoBitWindow(&u2Bytes, i)
		idx := (a << 2) | b
		if idx != 0 {
			acc = AddJacobian(&acc, &t[idx])
		}
	}
	return acc.ToAffine()
}

// twoBitWindow returns the 2-bit value at window i (0-indexed from the most
// significant end) of a 256-bit big-endian value. Since each window is 2
// bits and a byte holds 8, a window never spans a byte boundary.
func twoBitWindow(buf *[32]byte, i int) byte {
	bitIndex := 2 * i
	byteIdx := bitIndex / 8
	offsetInByte := bitIndex % 8
	shift := 6 - offsetInByte
	return (buf[byteIdx] >> shift) & 0x3
}
