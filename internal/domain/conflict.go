package domain

import (
	"strings"

	"github.com/clinch-dev/clinch/internal/domain/models"
)

// ConflictOutcome classifies an incoming record against the registry.
type ConflictOutcome string

const (
	// OutcomeFresh means neither the name nor the address is registered.
	OutcomeFresh ConflictOutcome = "fresh"
	// OutcomeAlias means the address/network pair is registered under another name.
	OutcomeAlias ConflictOutcome = "alias"
	// OutcomeNameCollision means the name is already taken somewhere.
	OutcomeNameCollision ConflictOutcome = "name-collision"
)

// Resolution is the result of ResolveConflict.
type Resolution struct {
	Outcome ConflictOutcome
	// Existing is the registered record that triggered an alias or collision.
	Existing *models.Contract
	// Suggestion is an alternative name, set for collisions only.
	Suggestion string
}

// Accepted reports whether the candidate may be appended to the registry.
func (r Resolution) Accepted() bool {
	return r.Outcome != OutcomeNameCollision
}

// Err returns a *NameConflictError for collisions and nil otherwise.
func (r Resolution) Err(candidate *models.Contract) error {
	if r.Outcome != OutcomeNameCollision {
		return nil
	}
	return &NameConflictError{
		Name:       strings.TrimSpace(candidate.Name),
		Network:    strings.ToLower(strings.TrimSpace(candidate.Network)),
		Existing:   r.Existing.Address,
		ExistingOn: r.Existing.Network,
		Suggestion: r.Suggestion,
	}
}

// ResolveConflict classifies candidate against existing. Name collisions win
// over aliases: a name is unique across every network. The candidate is
// normalized in place before comparison.
func ResolveConflict(candidate *models.Contract, existing []*models.Contract) Resolution {
	candidate.Normalize()

	if holder := FindByName(existing, candidate.Name); holder != nil {
		return Resolution{
			Outcome:    OutcomeNameCollision,
			Existing:   holder,
			Suggestion: SuggestName(candidate.Name, candidate.Network),
		}
	}

	for _, c := range existing {
		if c.SameInstance(candidate) {
			return Resolution{Outcome: OutcomeAlias, Existing: c}
		}
	}

	return Resolution{Outcome: OutcomeFresh}
}

// SuggestName builds the alternative offered on a name collision.
func SuggestName(name, network string) string {
	name = strings.TrimSpace(name)
	network = strings.TrimSpace(network)
	if network == "" {
		return strings.ToUpper(name + "_2")
	}
	return strings.ToUpper(name + "_" + network)
}

// FindByName returns the record whose name matches case-insensitively.
func FindByName(contracts []*models.Contract, name string) *models.Contract {
	if i := IndexByName(contracts, name); i >= 0 {
		return contracts[i]
	}
	return nil
}

// IndexByName returns the position of the named record or -1.
func IndexByName(contracts []*models.Contract, name string) int {
	name = strings.TrimSpace(name)
	for i, c := range contracts {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return i
		}
	}
	return -1
}

// Aliases returns every other record that shares c's address and network.
func Aliases(contracts []*models.Contract, c *models.Contract) []*models.Contract {
	var out []*models.Contract
	for _, other := range contracts {
		if strings.EqualFold(other.Name, c.Name) {
			continue
		}
		if other.SameInstance(c) {
			out = append(out, other)
		}
	}
	return out
}
