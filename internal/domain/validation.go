package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsValidAddress reports whether address is 0x followed by 40 hex characters.
// Surrounding whitespace is ignored.
func IsValidAddress(address string) bool {
	address = strings.TrimSpace(address)
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return false
	}
	return common.IsHexAddress(address)
}

// IsValidName reports whether name can be used as a registry handle. Names
// end up in vault file names, so path separators are rejected.
func IsValidName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && name != "." && name != ".."
}

// IsValidNetwork reports whether network is a usable identifier.
func IsValidNetwork(network string) bool {
	network = strings.TrimSpace(network)
	return network != "" && !strings.ContainsAny(network, " \t/\\")
}

// ChecksumAddress renders an address in EIP-55 mixed case for display.
func ChecksumAddress(address string) string {
	if !IsValidAddress(address) {
		return address
	}
	return common.HexToAddress(address).Hex()
}

// ValidateContract checks the fields a record must carry before it is stored.
func ValidateContract(name, address, network string) error {
	if !IsValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !IsValidAddress(address) {
		return fmt.Errorf("%w: %q (expected 0x followed by 40 hex characters)", ErrInvalidAddress, address)
	}
	if !IsValidNetwork(network) {
		return fmt.Errorf("%w: %q", ErrInvalidNetwork, network)
	}
	return nil
}
