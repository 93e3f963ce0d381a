// Package security detects private-key-shaped values in registry records.
package security

import (
	"regexp"
	"strings"

	"github.com/clinch-dev/clinch/internal/domain/models"
)

// keyLength is the hex length of a raw secp256k1 private key. Addresses are 40.
const keyLength = 64

var hex64 = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// LeakScanner flags records that carry a raw private key where an address was
// expected.
type LeakScanner struct{}

// NewLeakScanner creates a new LeakScanner
func NewLeakScanner() *LeakScanner {
	return &LeakScanner{}
}

// LooksLikeKey reports whether value is a string of exactly 64 hex characters,
// with or without a leading 0x. Non-string values never look like a key.
func LooksLikeKey(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s) != keyLength {
		return false
	}
	return hex64.MatchString(s)
}

// HasLeak checks the deployer field, which should hold a 40-character address.
// TxHash is legitimately 64 hex characters and is not inspected.
func (s *LeakScanner) HasLeak(c *models.Contract) bool {
	if c == nil {
		return false
	}
	return LooksLikeKey(c.Deployer)
}

// LooksLikeKey is the method form of the package function, for injection.
func (s *LeakScanner) LooksLikeKey(value any) bool {
	return LooksLikeKey(value)
}
