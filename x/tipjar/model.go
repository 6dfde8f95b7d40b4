package tipjar

import (
	"encoding/binary"

	tipping "github.com/pythocooks/onlyagents-tipping"
	"github.com/pythocooks/onlyagents-tipping/errors"
)

// configLabel is the derivation label of the configuration record. All
// deployments of the program use the same label, so each program address
// owns exactly one record.
const configLabel = "config"

const (
	// ConfigSize is the wire size of a serialized configuration record.
	ConfigSize = 83

	// MaxFeeBps is the highest fee rate that can be configured,
	// expressed in basis points.
	MaxFeeBps uint16 = 1000
)

// Config is the configuration record of a tip settlement deployment. It
// is stored in the record account as a fixed width, little endian byte
// sequence and updated in place by the instruction handlers.
type Config struct {
	// Initialized is false for a record account that was created but
	// never written by the initialize instruction.
	Initialized bool

	// Admin is allowed to update the fee rate.
	Admin tipping.Address

	// Treasury receives the fee share of every tip.
	Treasury tipping.Address

	// FeeBps is the fee rate in basis points of the tipped amount.
	FeeBps uint16

	// TotalTips counts settled tip instructions.
	TotalTips uint64

	// TotalVolume accumulates the gross amount of all settled tips.
	TotalVolume uint64
}

var _ tipping.Persistent = (*Config)(nil)

// Marshal returns the fixed width binary representation of the record.
func (c *Config) Marshal() ([]byte, error) {
	raw := make([]byte, ConfigSize)
	if c.Initialized {
		raw[0] = 1
	}
	copy(raw[1:33], c.Admin)
	copy(raw[33:65], c.Treasury)
	binary.LittleEndian.PutUint16(raw[65:67], c.FeeBps)
	binary.LittleEndian.PutUint64(raw[67:75], c.TotalTips)
	binary.LittleEndian.PutUint64(raw[75:83], c.TotalVolume)
	return raw, nil
}

// Unmarshal loads the record from its binary representation. Data of
// the wrong length or with a mangled flag byte does not represent any
// record state and is rejected.
func (c *Config) Unmarshal(raw []byte) error {
	if len(raw) != ConfigSize {
		return errors.ErrModel.Newf("invalid record length: %d", len(raw))
	}
	switch raw[0] {
	case 0:
		c.Initialized = false
	case 1:
		c.Initialized = true
	default:
		return errors.ErrModel.Newf("invalid initialized flag: %d", raw[0])
	}
	c.Admin = make(tipping.Address, tipping.AddressLength)
	copy(c.Admin, raw[1:33])
	c.Treasury = make(tipping.Address, tipping.AddressLength)
	copy(c.Treasury, raw[33:65])
	c.FeeBps = binary.LittleEndian.Uint16(raw[65:67])
	c.TotalTips = binary.LittleEndian.Uint64(raw[67:75])
	c.TotalVolume = binary.LittleEndian.Uint64(raw[75:83])
	return nil
}

// Validate returns an error if this is not a valid configuration record.
func (c *Config) Validate() error {
	if !c.Initialized {
		return errors.Wrap(errors.ErrState, "not initialized")
	}
	var errs error
	errs = errors.Append(errs,
		errors.Wrap(c.Admin.Validate(), "admin"))
	errs = errors.Append(errs,
		errors.Wrap(c.Treasury.Validate(), "treasury"))
	if c.FeeBps > MaxFeeBps {
		errs = errors.Append(errs,
			ErrFeeTooHigh.Newf("%d basis points", c.FeeBps))
	}
	return errs
}

// RecordTip updates the settlement counters for a tip of the given
// gross amount. Counters that can no longer be represented fail the
// settlement instead of silently wrapping around.
func (c *Config) RecordTip(amount uint64) error {
	if c.TotalTips+1 < c.TotalTips {
		return errors.Wrap(errors.ErrOverflow, "total tips")
	}
	if c.TotalVolume+amount < c.TotalVolume {
		return errors.Wrap(errors.ErrOverflow, "total volume")
	}
	c.TotalTips++
	c.TotalVolume += amount
	return nil
}

// ConfigAddress returns the address of the configuration record owned
// by the given program, together with the derivation nonce.
func ConfigAddress(program tipping.Address) (tipping.Address, uint8, error) {
	return tipping.FindDerivedAddress(program, configLabel)
}

// LoadConfig returns the configuration record of the given program.
func LoadConfig(db tipping.ReadOnlyKVStore, program tipping.Address) (*Config, error) {
	addr, _, err := ConfigAddress(program)
	if err != nil {
		return nil, errors.Wrap(err, "record address")
	}
	return loadConfigAt(db, addr)
}

func loadConfigAt(db tipping.ReadOnlyKVStore, addr tipping.Address) (*Config, error) {
	raw, err := db.Get(tipping.AccountKey(addr))
	switch {
	case err != nil:
		return nil, errors.Wrap(err, "load record")
	case raw == nil:
		return nil, errors.Wrap(errors.ErrNotFound, "no record account")
	}
	var c Config
	if err := c.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(err, "unmarshal record")
	}
	return &c, nil
}

func saveConfig(db tipping.KVStore, addr tipping.Address, c *Config) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "invalid record")
	}
	raw, err := c.Marshal()
	if err != nil {
		return errors.Wrap(err, "marshal record")
	}
	return db.Set(tipping.AccountKey(addr), raw)
}
