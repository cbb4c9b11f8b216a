package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_LevelFallback(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("chatty").GetLevel())
}

func TestNewWithOutput_WritesTextLines(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("info", &buf)

	log.WithFields(logrus.Fields{"component": "app", "user_id": "u1"}).Info("loaded")
	log.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "component=app")
	assert.Contains(t, out, "user_id=u1")
	assert.Contains(t, out, "msg=loaded")
	assert.NotContains(t, out, "hidden")
}
