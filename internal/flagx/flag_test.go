package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-d", "sqlite", "-x", "1"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "sqlite"},
		},
		{
			name:         "equals form",
			args:         []string{"-f=wellness.db", "-x", "1"},
			allowedFlags: []string{"-f"},
			want:         []string{"-f=wellness.db"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "dangling flag kept without value",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next flag is not consumed as value",
			args:         []string{"-c", "-l", "debug"},
			allowedFlags: []string{"-c", "-l"},
			want:         []string{"-c", "-l", "debug"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/etc/wk.json", ConfigPath([]string{"-c", "/etc/wk.json"}))
	assert.Equal(t, "/etc/wk.json", ConfigPath([]string{"-config=/etc/wk.json", "-d", "memory"}))
	assert.Equal(t, "b.json", ConfigPath([]string{"-c", "a.json", "-config", "b.json"}))
	assert.Empty(t, ConfigPath([]string{"-d", "memory"}))
}
