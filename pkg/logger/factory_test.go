package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashsale/platform/pkg/correlation"
	"github.com/flashsale/platform/pkg/logger"
	"github.com/flashsale/platform/pkg/tenant"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with static attrs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "catalog")),
		)
		log.Info("started")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "catalog", record["service"])
		assert.Equal(t, "started", record["msg"])
	})

	t.Run("level filtering", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		assert.Zero(t, buf.Len())
	})

	t.Run("invalid format panics at startup", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("yaml"))
		})
	})
}

func TestContextExtraction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextExtractors(
			correlation.LoggerExtractor(),
			tenant.LoggerExtractor(),
		),
	)

	ctx := correlation.WithContext(context.Background(), "corr-1")
	ctx = tenant.WithContext(ctx, tenant.NewContext("org-a", "alice", nil, "corr-1"))
	log.InfoContext(ctx, "processed")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "corr-1", record["correlation_id"])

	group, ok := record["tenant"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "org-a", group["tenant_id"])
	assert.Equal(t, "alice", group["user_id"])

	// Without tenant context the record carries only the correlation ID.
	buf.Reset()
	log.InfoContext(correlation.WithContext(context.Background(), "corr-2"), "public")
	record = map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "corr-2", record["correlation_id"])
	assert.NotContains(t, record, "tenant")
}
