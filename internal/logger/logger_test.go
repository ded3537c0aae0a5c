package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]struct {
		want Level
		ok   bool
	}{
		"debug":   {LevelDebug, true},
		" DEBUG ": {LevelDebug, true},
		"":        {LevelInfo, true},
		"info":    {LevelInfo, true},
		"warning": {LevelWarn, true},
		"warn":    {LevelWarn, true},
		"error":   {LevelError, true},
		"verbose": {LevelInfo, false},
	}
	for in, tc := range cases {
		got, ok := ParseLevel(in)
		assert.Equal(t, tc.want, got, "ParseLevel(%q)", in)
		assert.Equal(t, tc.ok, ok, "ParseLevel(%q) ok", in)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init("warn", &buf)
	t.Cleanup(func() { Init("info", nil) })

	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "[WARN] warn 3")
	assert.Contains(t, out, "[ERROR] error 4")
	require.Equal(t, LevelWarn, CurrentLevel())
	assert.False(t, EnabledDebug())
}
