package tipjar

import (
	"encoding/binary"

	tipping "github.com/pythocooks/onlyagents-tipping"
	"github.com/pythocooks/onlyagents-tipping/errors"
)

// Instruction opcodes as encoded in the first byte of the call data.
const (
	OpInitialize uint8 = 0
	OpTip        uint8 = 1
	OpUpdateFee  uint8 = 2
)

var (
	_ tipping.Msg = (*InitializeMsg)(nil)
	_ tipping.Msg = (*TipMsg)(nil)
	_ tipping.Msg = (*UpdateFeeMsg)(nil)
)

// InitializeMsg creates the configuration record of a deployment.
type InitializeMsg struct {
	// FeeBps is the initial fee rate in basis points.
	FeeBps uint16
}

func (InitializeMsg) Path() string {
	return "tipjar/initialize"
}

func (m *InitializeMsg) Marshal() ([]byte, error) {
	raw := make([]byte, 2)
	binary.LittleEndian.PutUint16(raw, m.FeeBps)
	return raw, nil
}

func (m *InitializeMsg) Unmarshal(raw []byte) error {
	if len(raw) != 2 {
		return errors.ErrMsg.Newf("invalid payload length: %d", len(raw))
	}
	m.FeeBps = binary.LittleEndian.Uint16(raw)
	return nil
}

func (m *InitializeMsg) Validate() error {
	return validateFeeBps(m.FeeBps)
}

// TipMsg settles a tip between a tipper and a creator.
type TipMsg struct {
	// Amount is the gross amount moved out of the tipper account.
	Amount uint64
}

func (TipMsg) Path() string {
	return "tipjar/tip"
}

func (m *TipMsg) Marshal() ([]byte, error) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, m.Amount)
	return raw, nil
}

func (m *TipMsg) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.ErrMsg.Newf("invalid payload length: %d", len(raw))
	}
	m.Amount = binary.LittleEndian.Uint64(raw)
	return nil
}

func (m *TipMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero tip")
	}
	return nil
}

// UpdateFeeMsg changes the fee rate of a deployment.
type UpdateFeeMsg struct {
	// NewFeeBps is the fee rate in basis points to switch to.
	NewFeeBps uint16
}

func (UpdateFeeMsg) Path() string {
	return "tipjar/update_fee"
}

func (m *UpdateFeeMsg) Marshal() ([]byte, error) {
	raw := make([]byte, 2)
	binary.LittleEndian.PutUint16(raw, m.NewFeeBps)
	return raw, nil
}

func (m *UpdateFeeMsg) Unmarshal(raw []byte) error {
	if len(raw) != 2 {
		return errors.ErrMsg.Newf("invalid payload length: %d", len(raw))
	}
	m.NewFeeBps = binary.LittleEndian.Uint16(raw)
	return nil
}

func (m *UpdateFeeMsg) Validate() error {
	return validateFeeBps(m.NewFeeBps)
}

func validateFeeBps(bps uint16) error {
	if bps > MaxFeeBps {
		return ErrFeeTooHigh.Newf("%d basis points", bps)
	}
	return nil
}

// DecodeMsg returns the message encoded in the call data. The first
// byte selects the instruction and the rest is the fixed width payload.
// Only framing is verified here, content rules are checked by the
// handlers through Validate.
func DecodeMsg(data []byte) (tipping.Msg, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(errors.ErrMsg, "empty instruction data")
	}
	var msg tipping.Msg
	switch op := data[0]; op {
	case OpInitialize:
		msg = &InitializeMsg{}
	case OpTip:
		msg = &TipMsg{}
	case OpUpdateFee:
		msg = &UpdateFeeMsg{}
	default:
		return nil, errors.ErrMsg.Newf("unknown operation: %d", op)
	}
	if err := msg.Unmarshal(data[1:]); err != nil {
		return nil, err
	}
	return msg, nil
}

// EncodeMsg returns the call data that DecodeMsg will turn back into
// the given message.
func EncodeMsg(msg tipping.Msg) ([]byte, error) {
	var op uint8
	switch msg.(type) {
	case *InitializeMsg:
		op = OpInitialize
	case *TipMsg:
		op = OpTip
	case *UpdateFeeMsg:
		op = OpUpdateFee
	default:
		return nil, errors.ErrType.Newf("unsupported message type %T", msg)
	}
	payload, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}
	return append([]byte{op}, payload...), nil
}
