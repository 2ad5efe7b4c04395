// Package wallet derives account addresses from secp256k1 keys. Signing itself
// is delegated to the signer service.
package wallet

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/xerrors"

	"github.com/x-xyz/xionmarket/domain"
)

// AddressFromHexKey derives the bech32 account address for a hex encoded private key.
func AddressFromHexKey(hexKey, prefix string) (domain.Address, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return "", xerrors.Errorf("private key: %w", domain.ErrInvalidInput)
	}
	return AddressFromPubKey(&key.PublicKey, prefix)
}

// AddressFromPubKey is bech32(prefix, ripemd160(sha256(compressed pubkey))).
func AddressFromPubKey(pub *ecdsa.PublicKey, prefix string) (domain.Address, error) {
	sha := sha256.Sum256(crypto.CompressPubkey(pub))
	hasher := ripemd160.New()
	hasher.Write(sha[:])
	return Encode(prefix, hasher.Sum(nil))
}

// Encode renders raw bytes as a bech32 string.
func Encode(prefix string, raw []byte) (domain.Address, error) {
	conv, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", err
	}
	s, err := bech32.Encode(prefix, conv)
	if err != nil {
		return "", err
	}
	return domain.Address(s), nil
}
