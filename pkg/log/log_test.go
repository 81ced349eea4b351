package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRunID(t *testing.T) {
	ctx, runID := WithRunID(context.Background())
	require.NotEmpty(t, runID)
	assert.Equal(t, runID, GetRunID(ctx))
	assert.Empty(t, GetRunID(context.Background()))
}

func TestForContext_AddsRunID(t *testing.T) {
	SetupTestLogger()

	original := logrus.StandardLogger().Out
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(original)

	ctx := context.WithValue(context.Background(), RunIDKey, "abc123")
	ForContext(ctx).WithField("table", "clicks").Info("lote gravado")

	assert.Contains(t, buf.String(), "run_id=abc123")
	assert.Contains(t, buf.String(), "table=clicks")
}
