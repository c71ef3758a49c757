package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// NewAddress synthesizes an EVM-style address: the trailing 20 bytes of a
// Keccak-256 digest over 32 random bytes, hex encoded with a 0x prefix. There
// is no key material behind the address; it only needs to look plausible and
// be unique per wallet.
func NewAddress() (string, error) {
	entropy := make([]byte, 32)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}

	h := sha3.NewLegacyKeccak256()
	h.Write(entropy)
	digest := h.Sum(nil)

	return "0x" + hex.EncodeToString(digest[len(digest)-20:]), nil
}
