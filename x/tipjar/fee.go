package tipjar

import "github.com/pythocooks/onlyagents-tipping/errors"

// feeDenominator converts basis points into a fraction of the amount.
const feeDenominator = 10000

// feeAmount returns the treasury share of a tipped amount, rounded
// down. The multiplication is checked so that an absurdly large tip
// fails instead of settling with a truncated fee.
func feeAmount(amount uint64, bps uint16) (uint64, error) {
	if amount == 0 || bps == 0 {
		return 0, nil
	}
	c := amount * uint64(bps)
	if c/amount != uint64(bps) {
		return 0, errors.ErrOverflow.Newf("cannot multiply %d and %d", amount, bps)
	}
	return c / feeDenominator, nil
}
