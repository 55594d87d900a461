// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256r1

// PrecomputedTable is a fixed-size, 16-entry lookup table of Jacobian
// points indexed by a 4-bit value whose high two bits select a multiple
// (0..3) of the generator G and whose low two bits select a multiple
// (0..3) of an arbitrary input point P.
//
// For i = (a<<2)|b with a, b in {0,1,2,3}, T[i] = a·G + b·P.  It is built
// fresh for every call (11 additions, 2 doublings) rather than cached
// per-key; the expected call mix does not justify the added complexity of
// sharing it process-wide.
type PrecomputedTable [16]JacobianPoint

// newPrecomputedTable builds a table from an arbitrary affine point p (the
// asserted/recovered public key or the point the caller is
// scalar-multiplying) together with the fixed base point G.
func newPrecomputedTable(px, py *FieldVal) *PrecomputedTable {
	var t PrecomputedTable

	t[0] = identityJacobian()
	t[1] = jacobianFromAffine(px, py)
	t[4] = jacobianFromAffine(BaseX(), BaseY())

	t[2] = DoubleJacobian(&t[1])
	t[8] = DoubleJacobian(&t[4])

	t[3] = AddJacobian(&t[1], &t[2])

	t[5] = AddJacobian(&t[1], &t[4])
	t[6] = AddJacobian(&t[2], &t[4])
	t[7] = AddJacobian(&t[3], &t[4])

	t[9] = AddJacobian(&t[1], &t[8])
	t[10] = AddJacobian(&t[2], &t[8])
	t[11] = AddJacobian(&t[3], &t[8])

	t[12] = AddJacobian(&t[4], &t[8])

	t[13] = AddJacobian(&t[1], &t[12])
	t[14] = AddJacobian(&t[2], &t[12])
	t[15] = AddJacobian(&t[3], &t[12])

	return &t
}
