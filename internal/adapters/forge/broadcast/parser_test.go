package broadcast

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinch-dev/clinch/internal/domain"
)

func writeBroadcast(t *testing.T, dir, script, chain, content string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, script, chain, LatestFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	require.NoError(t, os.Chtimes(path, mod, mod))
	return path
}

func TestParser_ParseBroadcastFile(t *testing.T) {
	dir := t.TempDir()
	path := writeBroadcast(t, dir, "Deploy.s.sol", "1", `{
  "chain": 1,
  "timestamp": 1700000000000,
  "transactions": [{"hash":"0xaa","transactionType":"CREATE","contractName":"Token","contractAddress":"0x1111111111111111111111111111111111111111","transaction":{"from":"0xf39f"}}],
  "receipts": [{"transactionHash":"0xaa","status":"0x1"}]
}`, time.Now())

	b, err := NewParser(dir).ParseBroadcastFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), b.Chain)
	require.Len(t, b.Transactions, 1)
	assert.Equal(t, "Token", b.Transactions[0].ContractName)
	assert.Equal(t, "0xf39f", b.Transactions[0].From())
	assert.Equal(t, int64(1700000000), b.TimestampSeconds())

	_, err = NewParser(dir).ParseBroadcastFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := writeBroadcast(t, dir, "Bad.s.sol", "1", `{`, time.Now())
	_, err = NewParser(dir).ParseBroadcastFile(bad)
	assert.Error(t, err)
}

func TestParser_FindLatest(t *testing.T) {
	t.Run("no directory", func(t *testing.T) {
		_, err := NewParser(filepath.Join(t.TempDir(), "broadcast")).FindLatest()
		assert.True(t, errors.Is(err, domain.ErrNoBroadcast))
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := NewParser(t.TempDir()).FindLatest()
		assert.True(t, errors.Is(err, domain.ErrNoBroadcast))
	})

	t.Run("newest wins", func(t *testing.T) {
		dir := t.TempDir()
		base := time.Now().Add(-time.Hour)
		writeBroadcast(t, dir, "Deploy.s.sol", "1", `{}`, base)
		newest := writeBroadcast(t, dir, "Deploy.s.sol", "11155111", `{}`, base.Add(time.Minute))
		writeBroadcast(t, dir, "Other.s.sol", "31337", `{}`, base.Add(-time.Minute))

		got, err := NewParser(dir).FindLatest()
		require.NoError(t, err)
		assert.Equal(t, newest, got)
	})
}
