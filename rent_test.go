package tipping_test

import (
	"testing"

	tipping "github.com/pythocooks/onlyagents-tipping"
	"github.com/stretchr/testify/assert"
)

func TestMinimumBalance(t *testing.T) {
	cases := map[string]struct {
		rent     tipping.Rent
		dataSize uint64
		want     uint64
	}{
		"default rent for the record size": {
			rent:     tipping.DefaultRent,
			dataSize: 83,
			want:     1468560,
		},
		"empty account still pays for the overhead": {
			rent:     tipping.DefaultRent,
			dataSize: 0,
			want:     890880,
		},
		"custom rent": {
			rent:     tipping.Rent{PerByteYear: 1000, ExemptionYears: 1},
			dataSize: 100,
			want:     228000,
		},
		"free ledger": {
			rent:     tipping.Rent{},
			dataSize: 83,
			want:     0,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rent.MinimumBalance(tc.dataSize))
		})
	}
}
