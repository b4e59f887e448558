package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := New("occupa-server", &buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "occupa-server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry["func"], "TestNew_EntryFields")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestChild(t *testing.T) {
	var buf bytes.Buffer
	parent := New("occupa-server", &buf)

	child := parent.Child("trace_id", "t-9")
	child.Info().Msg("child")
	childEntry := decodeEntry(t, &buf)

	buf.Reset()
	parent.Info().Msg("parent")
	parentEntry := decodeEntry(t, &buf)

	assert.Equal(t, "t-9", childEntry["trace_id"])
	assert.Equal(t, "occupa-server", childEntry["role"])
	assert.NotContains(t, parentEntry, "trace_id")
}

func TestFromContext(t *testing.T) {
	t.Run("without a logger", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req = req.WithContext(zl.WithContext(req.Context()))

		FromRequest(req).Info().Msg("from request")

		assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])
	})
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel(""))
	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	err := SetLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestWithActor(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()
	ctx := zl.WithContext(context.Background())

	ctx = WithActor(ctx, "agency", "0190a5b4")
	FromContext(ctx).Info().Msg("authenticated")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "agency", entry["actor_kind"])
	assert.Equal(t, "0190a5b4", entry["actor_id"])
	assert.Equal(t, "t-1", entry["trace_id"])
}
