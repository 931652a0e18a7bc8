package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "info", "json")
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("document_id", "BFT11383").Msg("document added")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "document added", line["message"])
	assert.Equal(t, "BFT11383", line["document_id"])
	assert.Equal(t, "info", line["level"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "DEBUG", "console")
	require.NoError(t, err)

	log.Debug().Msg("tracing")
	assert.Contains(t, buf.String(), "tracing")
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("loud", "json")
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
