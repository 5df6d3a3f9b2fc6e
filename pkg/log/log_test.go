package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configureForTest(t *testing.T, development bool) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	require.NoError(t, Configure(Options{Level: "debug", Development: development, Output: buf}))
	t.Cleanup(func() {
		_ = Configure(Options{Level: "info", Development: true, Output: os.Stderr})
	})
	return buf
}

func TestConfigure_InvalidLevel(t *testing.T) {
	err := Configure(Options{Level: "barulhento", Development: true, Output: &bytes.Buffer{}})
	assert.Error(t, err)
	t.Cleanup(func() {
		_ = Configure(Options{Level: "info", Development: true, Output: os.Stderr})
	})
}

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "req-123")
	assert.Equal(t, "req-123", id)
	assert.Equal(t, "req-123", GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestDevelopmentFiltersFields(t *testing.T) {
	buf := configureForTest(t, true)

	ctx, _ := WithCorrelationID(context.Background(), "abc")
	ForContext(ctx).WithFields(Fields{
		"path":           "/v1/dashboard",
		"internal_state": "oculto",
	}).WithField("dashboard_records", 12).Info("projeção gerada")

	out := buf.String()
	assert.Contains(t, out, "correlation_id=abc")
	assert.Contains(t, out, "path=/v1/dashboard")
	assert.Contains(t, out, "dashboard_records=12")
	assert.NotContains(t, out, "internal_state")
}

func TestProductionKeepsAllFields(t *testing.T) {
	buf := configureForTest(t, false)

	L.WithFields(Fields{"internal_state": "visivel"}).Warn("aviso")

	out := buf.String()
	assert.Contains(t, out, `"internal_state":"visivel"`)
	assert.Contains(t, out, `"level":"warning"`)
	assert.False(t, IsDevelopment())
}
