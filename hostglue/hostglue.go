// Package hostglue bridges the host environment's identity material —
// secp256k1 public keys and the addresses derived from them — into
// PactType values an evaluated contract's data or input table can
// carry, so a certificate can assert things like "input[0] == the
// holder's address".
package hostglue

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"go.dedis.ch/pact/pacttype"
)

// ErrInvalidPublicKey is returned when the supplied bytes do not decode
// to a valid secp256k1 public key.
var ErrInvalidPublicKey = errors.New("hostglue: invalid public key")

// Address is a 20-byte account address, derived the same way an
// Ethereum-style chain derives one: the low 20 bytes of keccak256 of
// the uncompressed public key.
type Address [20]byte

func (a Address) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

// DeriveAddress derives the Address for an uncompressed or compressed
// secp256k1 public key.
func DeriveAddress(pubKey []byte) (Address, error) {
	var pub *ecdsa.PublicKey
	var err error
	if len(pubKey) == 33 {
		pub, err = crypto.DecompressPubkey(pubKey)
	} else {
		pub, err = crypto.UnmarshalPubkey(pubKey)
	}
	if err != nil {
		return Address{}, fmt.Errorf("hostglue: %w: %v", ErrInvalidPublicKey, err)
	}
	return Address(crypto.PubkeyToAddress(*pub)), nil
}

// AddressToPactType encodes an Address as the StringLike variant, so
// it can be compared with EQ or tested with IN against a data table
// entry supplied by the contract.
func AddressToPactType(a Address) pacttype.PactType {
	return pacttype.StringLike(a[:])
}

// PublicKeyToPactType derives an address from pubKey and immediately
// wraps it as a PactType, for hosts that populate an input table
// directly from a caller's credentials.
func PublicKeyToPactType(pubKey []byte) (pacttype.PactType, error) {
	addr, err := DeriveAddress(pubKey)
	if err != nil {
		return pacttype.PactType{}, err
	}
	return AddressToPactType(addr), nil
}
