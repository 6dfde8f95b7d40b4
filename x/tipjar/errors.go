package tipjar

import "github.com/pythocooks/onlyagents-tipping/errors"

var (
	// ErrMissingSignature is returned when an account that must
	// authorize an instruction did not sign the call.
	ErrMissingSignature = errors.Register(120, "missing signature")

	// ErrInvalidRecordAddress is returned when the account passed as
	// the configuration record is not stored at the derived address.
	ErrInvalidRecordAddress = errors.Register(121, "invalid record address")

	// ErrUninitialized is returned when an instruction requires the
	// configuration record but it was never initialized.
	ErrUninitialized = errors.Register(122, "record not initialized")

	// ErrFeeTooHigh is returned when a fee rate above the allowed
	// maximum is submitted.
	ErrFeeTooHigh = errors.Register(123, "fee rate too high")

	// ErrTreasuryMismatch is returned when the treasury token account
	// provided with a tip does not belong to the configured treasury.
	ErrTreasuryMismatch = errors.Register(124, "treasury mismatch")
)
