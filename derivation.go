package tipping

import (
	"crypto/sha256"

	"github.com/agl/ed25519/edwards25519"

	"github.com/pythocooks/onlyagents-tipping/errors"
)

// derivationTag terminates every derivation preimage, separating derived
// addresses from any other sha256 use on the ledger.
const derivationTag = "ProgramDerivedAddress"

// maxDerivationNonce is the nonce a derivation search starts with.
const maxDerivationNonce uint8 = 255

// DeriveAddress computes the address owned by a program for given label and
// nonce. The digest is built over the label, the nonce, the program
// identity and a fixed tag:
//
//	sha256(label | nonce | program | "ProgramDerivedAddress")
//
// Not every digest qualifies as a derived address. Use FindDerivedAddress
// to resolve the canonical address for a label.
func DeriveAddress(program Address, label string, nonce uint8) Address {
	h := sha256.New()
	h.Write([]byte(label))
	h.Write([]byte{nonce})
	h.Write(program)
	h.Write([]byte(derivationTag))
	return Address(h.Sum(nil))
}

// FindDerivedAddress returns the canonical derived address of a program for
// given label, together with the nonce that produced it. Starting at 255
// the nonce is decremented until the digest does not decode as an ed25519
// curve point. Around half of all digests decode as curve points, so the
// first nonce is usually but not always the answer. Resolution is
// deterministic, the same program and label always yield the same address.
func FindDerivedAddress(program Address, label string) (Address, uint8, error) {
	for nonce := maxDerivationNonce; ; nonce-- {
		if addr := DeriveAddress(program, label, nonce); IsOffCurve(addr) {
			return addr, nonce, nil
		}
		if nonce == 0 {
			break
		}
	}
	// With 256 attempts at ~50% rejection each this is unreachable for
	// any real program and label.
	return nil, 0, errors.Wrapf(errors.ErrHuman, "no off curve address for label %q", label)
}

// VerifyDerivation checks the claim that addr is the derivation of given
// program, label and nonce. The address must reproduce the digest and must
// not be an ed25519 curve point, so that no private key can sign for it.
func VerifyDerivation(program Address, label string, nonce uint8, addr Address) error {
	if derived := DeriveAddress(program, label, nonce); !derived.Equals(addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "address not derived from label %q with nonce %d", label, nonce)
	}
	if !IsOffCurve(addr) {
		return errors.Wrap(errors.ErrUnauthorized, "derived address is on the ed25519 curve")
	}
	return nil
}

// IsOffCurve returns true if given address cannot be an ed25519 public key,
// meaning no private key can ever produce a signature for it. Addresses of
// the wrong length are not off curve, they are simply invalid.
func IsOffCurve(a Address) bool {
	if len(a) != AddressLength {
		return false
	}
	var buf [32]byte
	copy(buf[:], a)
	var point edwards25519.ExtendedGroupElement
	return !point.FromBytes(&buf)
}
