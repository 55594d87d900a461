// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256r1

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// GetAddress returns the low 20 bytes of the Keccak-256 hash of the 64-byte
// big-endian concatenation Qx‖Qy, identical to the Ethereum address
// derivation from a raw uncompressed public key.
func GetAddress(Qx, Qy *big.Int) [20]byte {
	var buf [64]byte
	Qx.FillBytes(buf[:32])
	Qy.FillBytes(buf[32:])

	digest := sha3.NewLegacyKeccak256()
	digest.Write(buf[:])

	var addr [20]byte
	copy(addr[:], digest.Sum(nil)[12:32])
	return addr
}

// RecoverAddress composes Recover with GetAddress. If recovery fails,
// Recover returns (0, 0) and the address is therefore the Keccak-256-derived
// low-20 of 64 zero bytes, a deterministic sentinel rather than an error.
func RecoverAddress(r, s *big.Int, v int, e *big.Int) [20]byte {
	Qx, Qy := Recover(r, s, v, e)
	return GetAddress(Qx, Qy)
}
