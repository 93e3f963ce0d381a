package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/clinch-dev/clinch/internal/domain/models"
)

const anvilKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestLooksLikeKey(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"bare key", anvilKey, true},
		{"prefixed key", "0x" + anvilKey, true},
		{"upper prefix", "0X" + strings.ToUpper(anvilKey), true},
		{"address", "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", false},
		{"63 chars", anvilKey[:63], false},
		{"65 chars", anvilKey + "0", false},
		{"non hex", strings.Replace(anvilKey, "a", "g", 1), false},
		{"double prefix", "0x0x" + anvilKey[:62], false},
		{"empty", "", false},
		{"number", 42, false},
		{"nil", nil, false},
		{"bytes", []byte(anvilKey), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeKey(tt.value))
		})
	}
}

func TestLooksLikeKey_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.StringMatching(`[0-9a-fA-F]{64}`).Draw(t, "key")
		if !LooksLikeKey(key) || !LooksLikeKey("0x"+key) {
			t.Fatalf("64 hex chars not flagged: %s", key)
		}

		other := rapid.StringMatching(`(0x)?[0-9a-f]{0,63}`).Draw(t, "short")
		if LooksLikeKey(other) {
			t.Fatalf("short value flagged: %s", other)
		}
	})
}

func TestHasLeak(t *testing.T) {
	s := NewLeakScanner()

	assert.False(t, s.HasLeak(nil))
	assert.False(t, s.HasLeak(&models.Contract{Deployer: "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"}))
	assert.True(t, s.HasLeak(&models.Contract{Deployer: "0x" + anvilKey}))
	// tx hashes are 64 hex characters too but live in a different field
	assert.False(t, s.HasLeak(&models.Contract{TxHash: "0x" + anvilKey}))
	assert.True(t, s.LooksLikeKey(anvilKey))
}
