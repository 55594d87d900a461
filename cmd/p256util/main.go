// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// p256util is a thin command-line front end around the secp256r1 package:
// it parses hex command-line arguments into the 256-bit integers the
// package consumes, calls exactly one core operation, and prints the
// result.  It contains no field or curve arithmetic of its own.
package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/Amxx/secp256r1"
	"github.com/decred/slog"
)

var log = slog.Disabled

type options struct {
	Verbose bool `short:"v" long:"verbose" description:"enable debug logging"`

	Verify struct {
		Qx string `positional-arg-name:"Qx" required:"true"`
		Qy string `positional-arg-name:"Qy" required:"true"`
		R  string `positional-arg-name:"r" required:"true"`
		S  string `positional-arg-name:"s" required:"true"`
		E  string `positional-arg-name:"e" required:"true"`
	} `command:"verify" description:"verify a signature (r, s) on digest e under public key (Qx, Qy)"`

	Recover struct {
		R string `positional-arg-name:"r" required:"true"`
		S string `positional-arg-name:"s" required:"true"`
		V int    `positional-arg-name:"v" required:"true"`
		E string `positional-arg-name:"e" required:"true"`
	} `command:"recover" description:"recover the public key that produced a signature"`

	Derive struct {
		D string `positional-arg-name:"d" required:"true"`
	} `command:"derive" description:"derive the public key for a private scalar d"`

	ECDH struct {
		D  string `positional-arg-name:"d" required:"true"`
		Px string `positional-arg-name:"Px" required:"true"`
		Py string `positional-arg-name:"Py" required:"true"`
	} `command:"ecdh" description:"derive the ECDH shared secret between d and peer point (Px, Py)"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		return err
	}

	if opts.Verbose {
		backend := slog.NewBackend(os.Stderr)
		logger := backend.Logger("P256")
		logger.SetLevel(slog.LevelDebug)
		log = logger
		secp256r1.UseLogger(logger)
	}

	switch parser.Active.Name {
	case "verify":
		return runVerify(&opts)
	case "recover":
		return runRecover(&opts)
	case "derive":
		return runDerive(&opts)
	case "ecdh":
		return runECDH(&opts)
	default:
		return fmt.Errorf("no command given; use -h for usage")
	}
}

func runVerify(opts *options) error {
	v := &opts.Verify
	Qx, Qy, r, s, e, err := parseFive(v.Qx, v.Qy, v.R, v.S, v.E)
	if err != nil {
		return err
	}
	log.Debugf("verify Qx=%x Qy=%x r=%x s=%x e=%x", Qx, Qy, r, s, e)
	ok := secp256r1.Verify(Qx, Qy, r, s, e)
	fmt.Println(ok)
	return nil
}

func runRecover(opts *options) error {
	rc := &opts.Recover
	r, err := secp256r1.ParseHex256(rc.R)
	if err != nil {
		return err
	}
	s, err := secp256r1.ParseHex256(rc.S)
	if err != nil {
		return err
	}
	e, err := secp256r1.ParseHex256(rc.E)
	if err != nil {
		return err
	}
	if rc.V != 0 && rc.V != 1 {
		return secp256r1.Error{Err: secp256r1.ErrRecoveryIDInvalid, Description: "recovery id must be 0 or 1"}
	}
	log.Debugf("recover r=%x s=%x v=%d e=%x", r, s, rc.V, e)
	Qx, Qy := secp256r1.Recover(r, s, rc.V, e)
	fmt.Printf("%s %s\n", hex.EncodeToString(Qx.Bytes()), hex.EncodeToString(Qy.Bytes()))
	return nil
}

func runDerive(opts *options) error {
	d, err := secp256r1.ParseHex256(opts.Derive.D)
	if err != nil {
		return err
	}
	log.Debugf("derive d=%x", d)
	Qx, Qy := secp256r1.GetPublicKey(d)
	fmt.Printf("%s %s\n", hex.EncodeToString(Qx.Bytes()), hex.EncodeToString(Qy.Bytes()))
	return nil
}

func runECDH(opts *options) error {
	d, err := secp256r1.ParseHex256(opts.ECDH.D)
	if err != nil {
		return err
	}
	Px, err := secp256r1.ParseHex256(opts.ECDH.Px)
	if err != nil {
		return err
	}
	Py, err := secp256r1.ParseHex256(opts.ECDH.Py)
	if err != nil {
		return err
	}
	log.Debugf("ecdh d=%x Px=%x Py=%x", d, Px, Py)
	secret := secp256r1.GenerateSharedSecret(d, Px, Py)
	fmt.Println(hex.EncodeToString(secret.Bytes()))
	return nil
}

func parseFive(a, b, c, d, e string) (*big.Int, *big.Int, *big.Int, *big.Int, *big.Int, error) {
	va, err := secp256r1.ParseHex256(a)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	vb, err := secp256r1.ParseHex256(b)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	vc, err := secp256r1.ParseHex256(c)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	vd, err := secp256r1.ParseHex256(d)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	ve, err := secp256r1.ParseHex256(e)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return va, vb, vc, vd, ve, nil
}
