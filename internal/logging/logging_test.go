package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, "info", true)

	logger.WithField("entry_id", "abc").Info("entry created")

	var payload map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "entry created", payload["msg"])
	assert.Equal(t, "abc", payload["entry_id"])
	assert.Equal(t, "info", payload["level"])
}

func TestDevelopmentLoggerWritesText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, "debug", false)

	logger.Debug("hello")

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.True(t, strings.Contains(buf.String(), "msg=hello"))
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	logger := NewWithOutput(&bytes.Buffer{}, "chatty", false)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
