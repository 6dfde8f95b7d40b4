package tiptest

import (
	"encoding/binary"

	tipping "github.com/pythocooks/onlyagents-tipping"
	"github.com/pythocooks/onlyagents-tipping/errors"
	"github.com/pythocooks/onlyagents-tipping/x/tipjar"
)

// SystemLedger is an in memory implementation of the host account
// creation capability. Every create attempt is recorded, including
// those that failed, so a test can assert what was requested and not
// only what succeeded.
type SystemLedger struct {
	// Requests collects every account creation attempt.
	Requests []tipjar.CreateAccountRequest

	// Rent is used to compute the funding requirement of a new
	// account. Zero value falls back to the default rent.
	Rent tipping.Rent
}

var _ tipjar.SystemController = (*SystemLedger)(nil)

// CreateAccount creates a new zero filled account. The request must
// carry a valid derivation proof and enough funding for the account to
// be rent exempt. An address that is already in use cannot be taken
// over.
func (s *SystemLedger) CreateAccount(db tipping.KVStore, req tipjar.CreateAccountRequest) error {
	s.Requests = append(s.Requests, req)

	if err := tipping.VerifyDerivation(req.Owner, req.Label, req.Nonce, req.Address); err != nil {
		return errors.Wrap(err, "derivation proof")
	}
	rent := s.Rent
	if rent == (tipping.Rent{}) {
		rent = tipping.DefaultRent
	}
	if min := rent.MinimumBalance(req.Size); req.Funding < min {
		return errors.ErrInsufficientAmount.Newf("funding %d below minimum balance %d", req.Funding, min)
	}
	key := tipping.AccountKey(req.Address)
	switch ok, err := db.Has(key); {
	case err != nil:
		return err
	case ok:
		return errors.ErrDuplicate.Newf("account %s exists", req.Address)
	}
	return db.Set(key, make([]byte, req.Size))
}

// TokenLedger is an in memory implementation of the host value
// transfer capability. Balances are kept in the same store the
// processor writes to, so a discarded instruction discards the
// transfers as well. Every transfer attempt is recorded, including
// those that failed.
type TokenLedger struct {
	// Moves collects every transfer attempt.
	Moves []Move
}

// Move is a single recorded transfer attempt.
type Move struct {
	Src    tipping.Address
	Dest   tipping.Address
	Amount uint64
}

var _ tipjar.TokenController = (*TokenLedger)(nil)

// MoveTokens transfers amount from the source to the destination
// account balance.
func (l *TokenLedger) MoveTokens(db tipping.KVStore, src, dest tipping.Address, amount uint64) error {
	l.Moves = append(l.Moves, Move{Src: src, Dest: dest, Amount: amount})

	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero transfer")
	}
	srcBal, err := l.Balance(db, src)
	if err != nil {
		return err
	}
	if srcBal < amount {
		return errors.ErrInsufficientAmount.Newf("balance %d, transfer %d", srcBal, amount)
	}
	destBal, err := l.Balance(db, dest)
	if err != nil {
		return err
	}
	if destBal+amount < destBal {
		return errors.Wrap(errors.ErrOverflow, "destination balance")
	}
	if err := l.SetBalance(db, src, srcBal-amount); err != nil {
		return err
	}
	return l.SetBalance(db, dest, destBal+amount)
}

// Balance returns the token balance of given account. An account that
// never received tokens has a zero balance.
func (l *TokenLedger) Balance(db tipping.ReadOnlyKVStore, addr tipping.Address) (uint64, error) {
	raw, err := db.Get(tokenKey(addr))
	switch {
	case err != nil:
		return 0, err
	case raw == nil:
		return 0, nil
	case len(raw) != 8:
		return 0, errors.ErrDatabase.Newf("invalid balance entry: %d bytes", len(raw))
	}
	return binary.LittleEndian.Uint64(raw), nil
}

// SetBalance funds given account, overwriting any previous balance.
func (l *TokenLedger) SetBalance(db tipping.KVStore, addr tipping.Address, amount uint64) error {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, amount)
	return db.Set(tokenKey(addr), raw)
}

func tokenKey(addr tipping.Address) []byte {
	return append([]byte("tok:"), addr...)
}
