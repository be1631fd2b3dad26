package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wesleykendall/footing/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Info("resolving lock for toolkit:dev")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "resolving lock for toolkit:dev")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Warn("shared registry unreachable")

	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Error(zerr.New("solver exploded"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "solver exploded")
}
