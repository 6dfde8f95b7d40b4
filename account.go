package tipping

import (
	"github.com/pythocooks/onlyagents-tipping/errors"
)

// Account is a single account reference as provided by the host runtime
// with an instruction call. The flags describe capabilities granted by the
// transaction for the duration of this call, they are not persistent
// account properties.
type Account struct {
	Address Address
	// Signer is set when the transaction carries a valid signature of
	// the private key matching this address.
	Signer bool
	// Writable is set when the transaction requested write access to
	// this account. The host schedules calls so that no two of them
	// write to the same account at the same time.
	Writable bool
}

// Call is a single program invocation as delivered by the host runtime.
type Call struct {
	// Program is the identity of the invoked program.
	Program Address
	// Accounts are the account references of the instruction, in the
	// order the client declared them.
	Accounts []Account
	// Data is the raw instruction payload.
	Data []byte
}

// Validate returns an error if this call is malformed and cannot be
// processed.
func (c Call) Validate() error {
	errs := errors.Wrap(c.Program.Validate(), "program")
	for i, a := range c.Accounts {
		errs = errors.Append(errs, errors.Wrapf(a.Address.Validate(), "account #%d", i))
	}
	return errs
}

// Take returns the first n account references of this call. Every
// instruction documents how many accounts it expects and in what order.
// Additional accounts are ignored, missing ones fail the call.
func (c Call) Take(n int) ([]Account, error) {
	if len(c.Accounts) < n {
		return nil, errors.Wrapf(errors.ErrInput, "%d accounts required, got %d", n, len(c.Accounts))
	}
	return c.Accounts[:n], nil
}

// AccountKey returns the store key under which the data of given account
// is persisted.
func AccountKey(a Address) []byte {
	return append([]byte("acct:"), a...)
}
