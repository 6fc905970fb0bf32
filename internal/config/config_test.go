package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedKey string
		expectedVal string
	}{
		{"key with value", "key=value", "key", "value"},
		{"key without value", "key", "key", ""},
		{"key with empty value", "key=", "key", ""},
		{"value with equals sign", "prompt=a=b", "prompt", "a=b"},
		{"empty input", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, val := ParseKeyValue(tt.input)
			assert.Equal(t, tt.expectedKey, key)
			assert.Equal(t, tt.expectedVal, val)
		})
	}
}

func TestParseKeyValuePairs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"single", "debug=true", map[string]string{"debug": "true"}},
		{"multiple", "debug=true,prompt=calc> ", map[string]string{"debug": "true", "prompt": "calc>"}},
		{"whitespace and blanks", " debug=1 ,, postfix=0 ", map[string]string{"debug": "1", "postfix": "0"}},
		{"empty key", "=x,quit=exit", map[string]string{"quit": "exit"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseKeyValuePairs(tt.input))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	c, err = Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(dir, "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\nprompt: 'calc> '\nquit: [exit, quit]\n"), 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Debug: true, Prompt: "calc> ", Quit: []string{"exit", "quit"}}, c)

	require.NoError(t, os.WriteFile(path, []byte("colour: blue\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err, "unknown fields should be rejected")

	require.NoError(t, os.WriteFile(path, []byte("debug: [\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	c := Default()
	require.NoError(t, c.Apply("postfix=true,debug=1,quit=exit bye"))
	assert.True(t, c.Postfix)
	assert.True(t, c.Debug)
	assert.Equal(t, []string{"exit", "bye"}, c.Quit)
	assert.True(t, c.Quits("bye"))
	assert.False(t, c.Quits("q"))

	require.NoError(t, c.Apply(""))
	assert.True(t, c.Postfix)

	assert.Error(t, c.Apply("debug=maybe"))
	assert.Error(t, c.Apply("volume=11"))
}
