// Copyright (c) 2019-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256r1

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestParseHex256(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *big.Int
		wantErr ErrorKind
	}{
		{
			name: "plain hex",
			in:   "ff",
			want: big.NewInt(255),
		},
		{
			name: "0x-prefixed",
			in:   "0xff",
			want: big.NewInt(255),
		},
		{
			name: "0X-prefixed",
			in:   "0XFF",
			want: big.NewInt(255),
		},
		{
			name: "odd length gets a leading zero",
			in:   "f",
			want: big.NewInt(15),
		},
		{
			name: "empty string decodes to zero",
			in:   "",
			want: big.NewInt(0),
		},
		{
			name:    "non-hex characters",
			in:      "not-hex",
			wantErr: ErrHexInvalid,
		},
		{
			name:    "more than 32 bytes",
			in:      "01" + strings.Repeat("00", 32),
			wantErr: ErrHexTooLong,
		},
	}

	for _, test := range tests {
		got, err := ParseHex256(test.in)
		if test.wantErr != "" {
			if err == nil {
				t.Errorf("%s: got no error, want %v", test.name, test.wantErr)
				continue
			}
			if !errors.Is(err, test.wantErr) {
				t.Errorf("%s: got error %v, want kind %v", test.name, err, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if got.Cmp(test.want) != 0 {
			t.Errorf("%s: ParseHex256(%q) = %s, want %s", test.name, test.in, got, test.want)
		}
	}
}

