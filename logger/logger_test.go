package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, parseLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, parseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, parseLevel(""))
	assert.Equal(t, logrus.InfoLevel, parseLevel("verbose"))
}

func TestInitJSONFormat(t *testing.T) {
	require.NoError(t, Init("info", "json", ""))

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	WithFields(logrus.Fields{"path": "/askai"}).Info("navigated")

	assert.Contains(t, buf.String(), `"path":"/askai"`)
	assert.Contains(t, buf.String(), `"msg":"navigated"`)
}

func TestInitWithFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "site.log")
	require.NoError(t, Init("debug", "text", file))
	defer SetOutput(os.Stdout)

	Infof("hello %s", "file")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}
