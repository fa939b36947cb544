package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Writer: &buf, NoColor: true})

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	logger.Debug("hidden")
	logger.WithField("file", "a.checks.yaml").Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "file=a.checks.yaml")
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Writer: &buf, Verbose: true, NoColor: true})

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	logger.WithFields(logrus.Fields{"expr": "numbers.gdc(1, 2)"}).Debug("evaluating")
	assert.Contains(t, buf.String(), "evaluating")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nowhere")
}
