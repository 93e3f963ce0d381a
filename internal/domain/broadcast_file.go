package domain

import "strings"

// TransactionTypeCreate marks a contract-creation entry in a broadcast file.
const TransactionTypeCreate = "CREATE"

// BroadcastFile represents a Foundry broadcast file (run-latest.json)
type BroadcastFile struct {
	Chain        uint64                 `json:"chain"`
	Transactions []BroadcastTransaction `json:"transactions"`
	Receipts     []BroadcastReceipt     `json:"receipts"`
	Timestamp    uint64                 `json:"timestamp"`
	Commit       string                 `json:"commit,omitempty"`
}

// BroadcastTransaction represents a transaction in a broadcast file
type BroadcastTransaction struct {
	Hash            string         `json:"hash"`
	TransactionType string         `json:"transactionType"`
	ContractName    string         `json:"contractName"`
	ContractAddress string         `json:"contractAddress"`
	Function        string         `json:"function,omitempty"`
	Deployer        any            `json:"deployer,omitempty"`
	Transaction     map[string]any `json:"transaction,omitempty"`
}

// IsCreate reports whether the entry is a named contract creation.
func (t BroadcastTransaction) IsCreate() bool {
	return t.TransactionType == TransactionTypeCreate && strings.TrimSpace(t.ContractName) != ""
}

// From returns the transaction originator as recorded in the broadcast. A
// top-level deployer entry wins over transaction.from. Values that are not
// strings are returned as-is so the caller can decide how to treat them.
func (t BroadcastTransaction) From() any {
	if t.Deployer != nil {
		return t.Deployer
	}
	if t.Transaction != nil {
		if from, ok := t.Transaction["from"]; ok {
			return from
		}
	}
	return nil
}

// BroadcastReceipt represents a receipt in a broadcast file
type BroadcastReceipt struct {
	TransactionHash string `json:"transactionHash"`
	BlockNumber     string `json:"blockNumber,omitempty"`
	Status          string `json:"status,omitempty"`
	ContractAddress string `json:"contractAddress,omitempty"`
}

// ReceiptFor returns the receipt whose hash matches txHash, case-insensitive.
func (b *BroadcastFile) ReceiptFor(txHash string) (*BroadcastReceipt, bool) {
	if txHash == "" {
		return nil, false
	}
	for i := range b.Receipts {
		if strings.EqualFold(b.Receipts[i].TransactionHash, txHash) {
			return &b.Receipts[i], true
		}
	}
	return nil, false
}

// millisecondThreshold separates second and millisecond timestamps: a
// seconds value this large would be thousands of years in the future.
const millisecondThreshold = 100_000_000_000

// TimestampSeconds returns the broadcast timestamp in Unix seconds.
func (b *BroadcastFile) TimestampSeconds() int64 {
	if b.Timestamp >= millisecondThreshold {
		return int64(b.Timestamp / 1000)
	}
	return int64(b.Timestamp)
}
