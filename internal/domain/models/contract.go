package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Contract is a single registry entry: one name pointing at a deployed
// instance on one network.
type Contract struct {
	Name       string `json:"name" yaml:"name"`
	Address    string `json:"address" yaml:"address"`
	Network    string `json:"network" yaml:"network"`
	Verified   bool   `json:"verified" yaml:"verified"`
	ABI        string `json:"abi,omitempty" yaml:"abi,omitempty"`
	TxHash     string `json:"txHash,omitempty" yaml:"txHash,omitempty"`
	Deployer   string `json:"deployer,omitempty" yaml:"deployer,omitempty"`
	DeployedAt int64  `json:"deployedAt" yaml:"deployedAt"`
}

// Normalize trims the record and lower-cases address and network in place.
func (c *Contract) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.ToLower(strings.TrimSpace(c.Address))
	c.Network = strings.ToLower(strings.TrimSpace(c.Network))
}

// Clone returns a copy that shares nothing with c.
func (c *Contract) Clone() *Contract {
	clone := *c
	return &clone
}

// DeployedTime returns DeployedAt as a time, or the zero time when unset.
func (c *Contract) DeployedTime() time.Time {
	if c.DeployedAt == 0 {
		return time.Time{}
	}
	return time.Unix(c.DeployedAt, 0)
}

// SameInstance reports whether both records point at the same on-chain
// instance (address and network, case-insensitive).
func (c *Contract) SameInstance(other *Contract) bool {
	return strings.EqualFold(strings.TrimSpace(c.Address), strings.TrimSpace(other.Address)) &&
		strings.EqualFold(strings.TrimSpace(c.Network), strings.TrimSpace(other.Network))
}

// Artifact represents the part of a Foundry compilation artifact we read.
type Artifact struct {
	ABI json.RawMessage `json:"abi"`
}
