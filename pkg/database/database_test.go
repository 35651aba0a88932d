package database

import (
	"context"
	"testing"
	"time"

	"github.com/inkwellbooks/inkwell/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		DatabaseConnectRetryCount: 1,
		DatabaseConnectRetryDelay: time.Millisecond,
		DatabaseBusyTimeout:       time.Second,
		DatabaseFilePath:          ":memory:",
	}

	db, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	var fk int
	err = db.QueryRow("PRAGMA foreign_keys").Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk)
}

func TestWithLogging(t *testing.T) {
	t.Parallel()

	ctx := WithLogging(context.Background())
	enabled, ok := ctx.Value(ctxKey).(bool)
	require.True(t, ok)
	assert.True(t, enabled)
}
