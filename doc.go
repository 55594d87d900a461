// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256r1 implements ECDSA verification, public key recovery, and
key derivation over the NIST P-256 (secp256r1) elliptic curve in pure Go.

This package does not sign and does not hash.  Callers are expected to
produce the 256-bit message digest themselves (with whatever hash function
their protocol specifies) and to obtain signatures from elsewhere; this
package only answers three questions against the fixed P-256 curve:

  - Does a signature (r, s) on a digest e verify under a public key Q?
  - Given (r, s, v, e), which public key produced this signature?
  - Given a private scalar d, what is the corresponding public key Q = d·G?

An overview of the features provided by this package:

  - FieldVal type for working modulo the P-256 field prime
  - ModNScalar type for working modulo the P-256 group order
  - Elliptic curve operations in Jacobian projective coordinates
  - Point addition and point doubling
  - Simultaneous scalar multiplication of G and an arbitrary point via a
    16-entry precomputed table and the Strauss-Shamir technique
  - ECDSA signature verification
  - Public key recovery from a signature, digest, and recovery id
  - Private-to-public key derivation
  - Ethereum-style address derivation (Keccak-256 of the raw public key)
  - ECDH shared secret derivation

This package does not parse or serialize keys or signatures into external
formats such as DER or SEC1; all inputs and outputs are raw 256-bit
integers.  Callers needing those formats should encode/decode at the edges
of their own protocol.

The cryptographic operations in this package do not run in constant time.
Callers in contexts where verifier timing could leak secret data should not
rely on this package without adding their own countermeasures.
*/
package secp256r1
