package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})
	return &buf
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	buf := capture(t)
	SetTraceEnabled(false)
	Trace("focus.transition", map[string]interface{}{"from": "items"})
	assert.Zero(t, buf.Len())
}

func TestTraceWritesStructuredEntry(t *testing.T) {
	buf := capture(t)
	SetTraceEnabled(true)
	Trace("ledger.owners.set", map[string]interface{}{"item": 2})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "ledger.owners.set", entry["event"])
	assert.Contains(t, entry, "time")
	payload, ok := entry["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, payload["item"])
}

func TestErrorIgnoresNil(t *testing.T) {
	buf := capture(t)
	Error(nil)
	assert.Zero(t, buf.Len())
	Error(errors.New("boom"))
	assert.True(t, strings.Contains(buf.String(), `"error":"boom"`), buf.String())
}

func TestConfigureWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "receipt-split.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(errors.New("disk"))
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "disk")
}
