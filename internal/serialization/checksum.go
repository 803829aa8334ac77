package serialization

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeChecksum computes the SHA-256 checksum of the payload.
func ComputeChecksum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// FormatChecksum renders a checksum as a lowercase hex string for the
// JSON header.
func FormatChecksum(sum [32]byte) string {
	return hex.EncodeToString(sum[:])
}

// ParseChecksum decodes a hex checksum string from the JSON header.
func ParseChecksum(s string) ([32]byte, error) {
	var sum [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return sum, fmt.Errorf("failed to decode checksum: %w", err)
	}
	if len(raw) != len(sum) {
		return sum, fmt.Errorf("invalid checksum length: got %d bytes, expected %d", len(raw), len(sum))
	}
	copy(sum[:], raw)
	return sum, nil
}

// ValidateChecksum compares a computed checksum against the stored one.
// Returns ErrChecksumMismatch if they differ.
func ValidateChecksum(computed, stored [32]byte) error {
	if computed != stored {
		return ErrChecksumMismatch
	}
	return nil
}
