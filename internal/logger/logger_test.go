package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	lgr, zl := New(&buf, -1)
	lgr.V(1).Info("rendered", "lines", 3)
	require.NoError(t, zl.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rendered", entry[MessageKey])
	assert.InDelta(t, 3, entry["lines"], 0)
	assert.Contains(t, entry, TimeStampKey)
}

func TestNewHonorsLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	lgr, zl := New(&buf, 0)
	lgr.V(1).Info("debug detail")
	require.NoError(t, zl.Sync())
	assert.Empty(t, buf.String())
}

func TestGetReturnsSameInstance(t *testing.T) {
	t.Parallel()
	assert.Same(t, Get(0), Get(-1))
}

func TestWithLogger(t *testing.T) {
	t.Parallel()
	lgr := logr.Discard()
	ctx := WithLogger(context.Background(), &lgr)
	assert.Same(t, &lgr, FromContext(ctx))
	assert.Equal(t, ctx, WithLogger(ctx, &lgr))

	other := logr.Discard()
	assert.Same(t, &other, FromContext(WithLogger(ctx, &other)))
}

func TestFromContextFallsBack(t *testing.T) {
	t.Parallel()
	assert.NotNil(t, FromContext(context.Background()))
}

func TestWithValues(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	lgr, zl := New(&buf, 0)
	WithValues(lgr, CommandKey, "render").Info("hello")
	require.NoError(t, zl.Sync())
	assert.Contains(t, buf.String(), `"command":"render"`)
}

func TestIsIgnorableSyncError(t *testing.T) {
	t.Parallel()
	assert.True(t, isIgnorableSyncError(syscall.ENOTTY))
	assert.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: The handle is invalid.")))
	assert.False(t, isIgnorableSyncError(errors.New("disk full")))
}
