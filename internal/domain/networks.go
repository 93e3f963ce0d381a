package domain

import (
	"fmt"
	"sort"
	"strings"
)

// KnownNetwork pairs a chain ID with the name used for it in the registry.
type KnownNetwork struct {
	ChainID uint64
	Name    string
}

var chainNames = map[uint64]string{
	1:        "mainnet",
	5:        "goerli",
	10:       "optimism",
	56:       "bsc",
	100:      "gnosis",
	137:      "polygon",
	8453:     "base",
	31337:    "anvil",
	42161:    "arbitrum",
	43114:    "avalanche",
	84532:    "base-sepolia",
	421614:   "arbitrum-sepolia",
	11155111: "sepolia",
	11155420: "optimism-sepolia",
}

// NetworkName maps a chain ID to its registry network name. Unknown IDs get
// a synthetic chain-<id> label.
func NetworkName(chainID uint64) string {
	if name, ok := chainNames[chainID]; ok {
		return name
	}
	if chainID == 0 {
		return "chain-unknown"
	}
	return fmt.Sprintf("chain-%d", chainID)
}

// ChainID looks up the chain ID of a network name, including chain-<id> labels.
func ChainID(network string) (uint64, bool) {
	network = strings.ToLower(strings.TrimSpace(network))
	for id, name := range chainNames {
		if name == network {
			return id, true
		}
	}
	var id uint64
	if _, err := fmt.Sscanf(network, "chain-%d", &id); err == nil && id != 0 {
		return id, true
	}
	return 0, false
}

// IsKnownNetwork reports whether network is one of the built-in names.
func IsKnownNetwork(network string) bool {
	network = strings.ToLower(strings.TrimSpace(network))
	for _, name := range chainNames {
		if name == network {
			return true
		}
	}
	return false
}

// KnownNetworks returns the built-in table ordered by chain ID.
func KnownNetworks() []KnownNetwork {
	networks := make([]KnownNetwork, 0, len(chainNames))
	for id, name := range chainNames {
		networks = append(networks, KnownNetwork{ChainID: id, Name: name})
	}
	sort.Slice(networks, func(i, j int) bool { return networks[i].ChainID < networks[j].ChainID })
	return networks
}
