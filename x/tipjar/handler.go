package tipjar

import (
	tipping "github.com/pythocooks/onlyagents-tipping"
	"github.com/pythocooks/onlyagents-tipping/errors"
)

// initialize creates the configuration record. The instruction expects
// the record, treasury, admin and system capability accounts, in that
// order. Creation of an already existing record is rejected by the
// system controller, so a deployment can never be initialized twice.
func (p *Processor) initialize(db tipping.KVStore, call tipping.Call, msg *InitializeMsg) error {
	accounts, err := call.Take(4)
	if err != nil {
		return err
	}
	record, treasury, admin := accounts[0], accounts[1], accounts[2]

	if !admin.Signer {
		return errors.Wrap(ErrMissingSignature, "admin")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	addr, nonce, err := p.recordAddress(record)
	if err != nil {
		return err
	}

	req := CreateAccountRequest{
		Address: addr,
		Owner:   p.program,
		Size:    ConfigSize,
		Funding: p.rent.MinimumBalance(ConfigSize),
		Payer:   admin.Address,
		Label:   configLabel,
		Nonce:   nonce,
	}
	if err := p.system.CreateAccount(db, req); err != nil {
		return errors.Wrap(err, "create record account")
	}

	conf := Config{
		Initialized: true,
		Admin:       admin.Address,
		Treasury:    treasury.Address,
		FeeBps:      msg.FeeBps,
	}
	if err := saveConfig(db, addr, &conf); err != nil {
		return errors.Wrap(err, "store record")
	}
	p.logger.Info("configuration record created",
		"admin", admin.Address,
		"treasury", treasury.Address,
		"fee_bps", msg.FeeBps)
	return nil
}

// tip settles a single tip. The instruction expects the record, tipper,
// tipper token, creator token, treasury token and transfer capability
// accounts, in that order. The counters are updated only after both
// transfer legs were accepted.
func (p *Processor) tip(db tipping.KVStore, call tipping.Call, msg *TipMsg) error {
	accounts, err := call.Take(6)
	if err != nil {
		return err
	}
	record, tipper := accounts[0], accounts[1]
	tipperToken, creatorToken, treasuryToken := accounts[2], accounts[3], accounts[4]

	if !tipper.Signer {
		return errors.Wrap(ErrMissingSignature, "tipper")
	}
	addr, _, err := p.recordAddress(record)
	if err != nil {
		return err
	}
	conf, err := loadInitialized(db, addr)
	if err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	fee, err := feeAmount(msg.Amount, conf.FeeBps)
	if err != nil {
		return err
	}
	// Safe because fee is at most a tenth of the amount.
	creatorAmount := msg.Amount - fee

	if err := p.tokens.MoveTokens(db, tipperToken.Address, creatorToken.Address, creatorAmount); err != nil {
		return errors.Wrap(err, "creator transfer")
	}
	if fee > 0 {
		if !treasuryToken.Address.Equals(conf.Treasury) {
			return ErrTreasuryMismatch.Newf("%s is not the treasury", treasuryToken.Address)
		}
		if err := p.tokens.MoveTokens(db, tipperToken.Address, treasuryToken.Address, fee); err != nil {
			return errors.Wrap(err, "fee transfer")
		}
	}

	if err := conf.RecordTip(msg.Amount); err != nil {
		return err
	}
	if err := saveConfig(db, addr, conf); err != nil {
		return errors.Wrap(err, "store record")
	}
	p.logger.Info("tip settled",
		"amount", msg.Amount,
		"creator_amount", creatorAmount,
		"fee", fee)
	return nil
}

// updateFee changes the fee rate. The instruction expects the record
// and admin accounts, in that order. Only the admin recorded during
// initialization is authorized.
func (p *Processor) updateFee(db tipping.KVStore, call tipping.Call, msg *UpdateFeeMsg) error {
	accounts, err := call.Take(2)
	if err != nil {
		return err
	}
	record, admin := accounts[0], accounts[1]

	if !admin.Signer {
		return errors.Wrap(ErrMissingSignature, "admin")
	}
	addr, _, err := p.recordAddress(record)
	if err != nil {
		return err
	}
	conf, err := loadInitialized(db, addr)
	if err != nil {
		return err
	}
	if !conf.Admin.Equals(admin.Address) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not the admin", admin.Address)
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	oldBps := conf.FeeBps
	conf.FeeBps = msg.NewFeeBps
	if err := saveConfig(db, addr, conf); err != nil {
		return errors.Wrap(err, "store record")
	}
	p.logger.Info("fee updated", "old_bps", oldBps, "new_bps", msg.NewFeeBps)
	return nil
}

// recordAddress returns the derived address of the configuration record
// and its nonce, after checking that the given account reference points
// at it.
func (p *Processor) recordAddress(record tipping.Account) (tipping.Address, uint8, error) {
	addr, nonce, err := ConfigAddress(p.program)
	if err != nil {
		return nil, 0, errors.Wrap(err, "record address")
	}
	if !record.Address.Equals(addr) {
		return nil, 0, ErrInvalidRecordAddress.Newf("%s is not the record account", record.Address)
	}
	return addr, nonce, nil
}

// loadInitialized returns the configuration record, requiring that the
// initialize instruction was already executed.
func loadInitialized(db tipping.ReadOnlyKVStore, addr tipping.Address) (*Config, error) {
	conf, err := loadConfigAt(db, addr)
	switch {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(ErrUninitialized, "no record account")
	default:
		return nil, err
	}
	if !conf.Initialized {
		return nil, errors.Wrap(ErrUninitialized, "record not initialized")
	}
	return conf, nil
}
