// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256r1

import "testing"

func TestPrecomputedTableLayout(t *testing.T) {
	p := jacobianFromAffine(
		newFieldVal(hexBig(t, "f1db729aa3af6b477cf6c2f7008462c2e17104d7dd1770fc715d97983489d34f")),
		newFieldVal(hexBig(t, "16823bebcbe553b38c2f346bc978bac483db16d6336a80e9e03c8e9db0f0e03d")))
	table := newPrecomputedTable(&p.X, &p.Y)

	if !table[0].IsIdentity() {
		t.Fatal("table[0] is not the identity")
	}
	assertAffineEqual(t, table[1].ToAffine(), p.ToAffine())

	g := jacobianFromAffine(BaseX(), BaseY())
	assertAffineEqual(t, table[4].ToAffine(), g.ToAffine())

	// Spot-check a handful of entries against the i = (a<<2)|b = a.G + b.P
	// definition for a, b not already covered by the seed entries.
	cases := []struct {
		idx  int
		xHex string
		yHex string
	}{
		{2, "900aa08245d407442b19a99a21a7111046e83144cdea24418b269edc4d8b66eb", "1035ec04ea6cc763fedfb8ed5e520632c4c5efe562fb4e145e389db538d7b54a"},
		{3, "64142b971a3758ebe401f42b31ebf2cc4453804ad8f79d39929569eb3406afa3", "8fc7936115642f799d22370ff18360409db4e50a92eefd7a53cf13cd6f7eb058"},
		{6, "9b2228a5f55839da8e5c680e7d2d5f1470e892cd47025aab6ecf9ce86913aad5", "263077f932a6a50ce37c6d8710a7a810ce02f4b29e09719c5509dc8d111e6ea9"},
		{11, "91c30fb8585cebb3525e01aa1fee3f1e61292fc499a29664f1b2e38f098e64e3", "81685748722bd671091aa9306ddfa9960dafe2ac1df2c2b68409c833439b3605"},
		{15, "1094b4fa01d158064c479b28565ab3c1b65239c4f2c6ba3ca2aa48cfcc762c43", "b0e6134cf7741282d517e8d04721f1a27a78c3916e7e11d91181b786939285b9"},
	}
	for _, c := range cases {
		want := mustAffine(t, c.xHex, c.yHex)
		got := table[c.idx].ToAffine()
		if !got.X.Equals(&want.X) || !got.Y.Equals(&want.Y) {
			t.Fatalf("table[%d] = %x,%x; want %x,%x",
				c.idx, got.X.Int(), got.Y.Int(), want.X.Int(), want.Y.Int())
		}
	}
}
