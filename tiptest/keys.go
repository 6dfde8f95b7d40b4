package tiptest

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	tipping "github.com/pythocooks/onlyagents-tipping"
	"github.com/pythocooks/onlyagents-tipping/crypto"
	"github.com/stellar/go/exp/crypto/derivation"
)

// NewKey returns a newly generated unique key pair.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// DeriveKey returns the key pair derived from the given hex encoded
// seed and hardened derivation path, for example "m/44'/501'/0'". The
// same seed and path always produce the same key pair, which makes the
// accounts used in tests reproducible.
func DeriveKey(t testing.TB, hexSeed, path string) crypto.Signer {
	t.Helper()
	seed, err := hex.DecodeString(hexSeed)
	if err != nil {
		t.Fatalf("cannot decode seed: %s", err)
	}
	k, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		t.Fatalf("cannot derive key for path %q: %s", path, err)
	}
	return crypto.PrivKeyEd25519FromSeed(k.Key)
}

// RandomAddr returns a valid random address genearted on the fly.
func RandomAddr(t testing.TB) tipping.Address {
	raw := make([]byte, tipping.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	a := tipping.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("generated address is not a valid address: %s", err)
	}
	return a
}

// DecodeAddr takes a hex encoded address string and returns it's raw
// representation as an address. This function ensures that returned
// value is a valid address.
func DecodeAddr(t testing.TB, encoded string) tipping.Address {
	t.Helper()
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		t.Fatalf("cannot decode hex string: %s", err)
	}
	a := tipping.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("decoded string is not a valid address: %s", err)
	}
	return a
}
