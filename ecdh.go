// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256r1

import "math/big"

// GenerateSharedSecret generates a shared secret based on a private scalar d
// and a peer public key (Px, Py) using Diffie-Hellman key exchange (ECDH)
// (RFC 5903).  RFC5903 Section 9 states we should only return x.
//
// This reuses the same scalar-multiplication path as GetPublicKey: a table
// built from the peer point, multiplied by d via MultShamir(T, 0, d), which
// computes d·P because the u1 (generator) weight is always zero.
//
// It is recommended to securely hash the result before using as a
// cryptographic key; this function does not hash, matching the package's
// general rule that message/secret hashing is left to the caller.
func GenerateSharedSecret(d *big.Int, Px, Py *big.Int) *big.Int {
	dN := newModNScalar(d)
	zeroScalar := newModNScalar(big.NewInt(0))

	table := newPrecomputedTable(newFieldVal(Px), newFieldVal(Py))
	result := MultShamir(table, zeroScalar, dN)
	return result.X.Int()
}
