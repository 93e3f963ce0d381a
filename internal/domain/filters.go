package domain

// SortOrder selects the ordering applied to a contract listing.
type SortOrder string

const (
	// SortNone keeps registry insertion order.
	SortNone SortOrder = ""
	SortName SortOrder = "name"
	SortDate SortOrder = "date"
)

// ContractFilter defines filtering options for contract listings
type ContractFilter struct {
	// Query matches a substring of the name or address, case-insensitive
	Query    string
	Network  string
	Verified *bool
	Sort     SortOrder
	// Fuzzy also accepts names that fuzzily match Query
	Fuzzy bool
}
