package tipjar

import (
	"testing"

	tipping "github.com/pythocooks/onlyagents-tipping"
	"github.com/pythocooks/onlyagents-tipping/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMsg(t *testing.T) {
	cases := map[string]struct {
		data    []byte
		wantErr *errors.Error
		wantMsg tipping.Msg
	}{
		"initialize": {
			data:    []byte{OpInitialize, 250, 0},
			wantMsg: &InitializeMsg{FeeBps: 250},
		},
		"initialize with a little endian rate": {
			data:    []byte{OpInitialize, 0x01, 0x02},
			wantMsg: &InitializeMsg{FeeBps: 0x0201},
		},
		"tip": {
			data:    []byte{OpTip, 0x10, 0x27, 0, 0, 0, 0, 0, 0},
			wantMsg: &TipMsg{Amount: 10000},
		},
		"update fee": {
			data:    []byte{OpUpdateFee, 0xe8, 0x03},
			wantMsg: &UpdateFeeMsg{NewFeeBps: 1000},
		},
		"empty instruction data": {
			data:    nil,
			wantErr: errors.ErrMsg,
		},
		"unknown operation": {
			data:    []byte{3, 0, 0},
			wantErr: errors.ErrMsg,
		},
		"initialize payload too short": {
			data:    []byte{OpInitialize, 1},
			wantErr: errors.ErrMsg,
		},
		"initialize payload too long": {
			data:    []byte{OpInitialize, 1, 0, 0},
			wantErr: errors.ErrMsg,
		},
		"tip payload too short": {
			data:    []byte{OpTip, 1, 2, 3, 4, 5, 6, 7},
			wantErr: errors.ErrMsg,
		},
		"update fee payload too long": {
			data:    []byte{OpUpdateFee, 1, 0, 0},
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := DecodeMsg(tc.data)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil {
				assert.Equal(t, tc.wantMsg, msg)
			}
		})
	}
}

func TestEncodeMsgRoundTrip(t *testing.T) {
	cases := map[string]tipping.Msg{
		"initialize": &InitializeMsg{FeeBps: 250},
		"tip":        &TipMsg{Amount: 123456789},
		"update fee": &UpdateFeeMsg{NewFeeBps: 500},
	}

	for testName, msg := range cases {
		t.Run(testName, func(t *testing.T) {
			data, err := EncodeMsg(msg)
			require.NoError(t, err)

			got, err := DecodeMsg(data)
			require.NoError(t, err)
			assert.Equal(t, msg, got)
		})
	}
}

func TestEncodeMsgUnsupported(t *testing.T) {
	if _, err := EncodeMsg(nil); !errors.ErrType.Is(err) {
		t.Fatalf("got error: %+v", err)
	}
}

func TestMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     tipping.Msg
		wantErr *errors.Error
	}{
		"initialize": {
			msg: &InitializeMsg{FeeBps: 250},
		},
		"initialize with the maximum rate": {
			msg: &InitializeMsg{FeeBps: 1000},
		},
		"initialize above the maximum rate": {
			msg:     &InitializeMsg{FeeBps: 1001},
			wantErr: ErrFeeTooHigh,
		},
		"tip": {
			msg: &TipMsg{Amount: 1},
		},
		"zero tip": {
			msg:     &TipMsg{Amount: 0},
			wantErr: errors.ErrAmount,
		},
		"update fee to zero": {
			msg: &UpdateFeeMsg{NewFeeBps: 0},
		},
		"update fee above the maximum rate": {
			msg:     &UpdateFeeMsg{NewFeeBps: 1001},
			wantErr: ErrFeeTooHigh,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
		})
	}
}

func TestMsgPath(t *testing.T) {
	assert.Equal(t, "tipjar/initialize", (&InitializeMsg{}).Path())
	assert.Equal(t, "tipjar/tip", (&TipMsg{}).Path())
	assert.Equal(t, "tipjar/update_fee", (&UpdateFeeMsg{}).Path())
}
