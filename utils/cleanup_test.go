package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"car-rental-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCleanupStaleTempFiles(t *testing.T) {
	config.Logger = zap.NewNop()

	dir := t.TempDir()
	ledgerPath := filepath.Join(dir, "reservations.xlsx")

	require.NoError(t, os.WriteFile(ledgerPath, []byte("ledger"), 0644))

	stale := ledgerPath + ".tmp-1"
	fresh := ledgerPath + ".tmp-2"
	require.NoError(t, os.WriteFile(stale, []byte("orphan"), 0644))
	require.NoError(t, os.WriteFile(fresh, []byte("in flight"), 0644))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	require.NoError(t, CleanupStaleTempFiles(ledgerPath, time.Hour))

	assert.NoFileExists(t, stale, "stale temp artifact should be removed")
	assert.FileExists(t, fresh, "recent temp file may belong to an in-flight write")
	assert.FileExists(t, ledgerPath, "the ledger itself is never touched")
}
