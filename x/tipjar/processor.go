package tipjar

import (
	"github.com/tendermint/tendermint/libs/log"

	tipping "github.com/pythocooks/onlyagents-tipping"
	"github.com/pythocooks/onlyagents-tipping/errors"
)

// SystemController allows to create accounts on the ledger without the
// need to directly access the store. Required functionality is
// implemented by the host runtime.
type SystemController interface {
	CreateAccount(db tipping.KVStore, req CreateAccountRequest) error
}

// TokenController allows to move token balances between accounts
// without the need to directly access the store. Required functionality
// is implemented by the host token ledger.
type TokenController interface {
	// MoveTokens transfers amount from the source to the destination
	// account. The transfer is all or nothing.
	MoveTokens(db tipping.KVStore, src, dest tipping.Address, amount uint64) error
}

// CreateAccountRequest describes a single account to be created by the
// host runtime. Because the owner of the new account is a program and
// not a key holder, the request is authorized by the derivation proof
// (label and nonce) instead of a signature.
type CreateAccountRequest struct {
	// Address the new account must be created at.
	Address tipping.Address
	// Owner is the program that will control the account.
	Owner tipping.Address
	// Size is the data size of the account in bytes.
	Size uint64
	// Funding is the initial balance of the account.
	Funding uint64
	// Payer provides the funding.
	Payer tipping.Address
	// Label and Nonce prove that Address was derived from Owner.
	Label string
	Nonce uint8
}

// Processor executes tip settlement instructions. It is the only
// component that writes to the store and it relies on the host runtime
// only through the two controller interfaces.
type Processor struct {
	program tipping.Address
	system  SystemController
	tokens  TokenController
	rent    tipping.Rent
	logger  log.Logger
}

// NewProcessor returns a processor for the program deployed at the
// given address.
func NewProcessor(program tipping.Address, system SystemController, tokens TokenController) *Processor {
	return &Processor{
		program: program,
		system:  system,
		tokens:  tokens,
		rent:    tipping.DefaultRent,
		logger:  log.NewNopLogger(),
	}
}

// WithLogger returns a processor that logs through the given logger.
func (p *Processor) WithLogger(l log.Logger) *Processor {
	p.logger = l
	return p
}

// WithRent returns a processor using the given rent parameters when
// funding new accounts.
func (p *Processor) WithRent(r tipping.Rent) *Processor {
	p.rent = r
	return p
}

// Process executes a single instruction call. All writes the
// instruction produces are collected in a cache and written to the
// store only if every step of the instruction succeeded. On any
// failure the store is left untouched and the error describes the
// first step that failed.
func (p *Processor) Process(db tipping.CacheableKVStore, call tipping.Call) (err error) {
	if err := call.Validate(); err != nil {
		return errors.Wrap(err, "invalid call")
	}
	if !call.Program.Equals(p.program) {
		return errors.ErrHuman.Newf("call for program %s routed to %s", call.Program, p.program)
	}
	msg, err := DecodeMsg(call.Data)
	if err != nil {
		return errors.Wrap(err, "load msg")
	}
	p.logger.Debug("processing instruction", "path", msg.Path())

	cache := db.CacheWrap()
	defer func() {
		if err == nil {
			err = cache.Write()
		} else {
			cache.Discard()
		}
	}()
	return p.apply(cache, call, msg)
}

func (p *Processor) apply(db tipping.KVStore, call tipping.Call, msg tipping.Msg) (err error) {
	defer errors.Recover(&err)

	switch msg := msg.(type) {
	case *InitializeMsg:
		return p.initialize(db, call, msg)
	case *TipMsg:
		return p.tip(db, call, msg)
	case *UpdateFeeMsg:
		return p.updateFee(db, call, msg)
	default:
		return errors.ErrType.Newf("unsupported message type %T", msg)
	}
}
