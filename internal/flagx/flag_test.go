package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "conf.json", "-s", "portal.db"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-s", "portal.db"},
			allowed: []string{"-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "-y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag at end without value",
			args:    []string{"-s"},
			allowed: []string{"-s"},
			want:    []string{"-s"},
		},
		{
			name:    "next flag is not taken as value",
			args:    []string{"-verify", "-v", "debug"},
			allowed: []string{"-verify", "-v"},
			want:    []string{"-verify", "-v", "debug"},
		},
		{
			name:    "order and repeats preserved",
			args:    []string{"-l", "10", "-d", "bcrypt", "-l", "20"},
			allowed: []string{"-l", "-d"},
			want:    []string{"-l", "10", "-d", "bcrypt", "-l", "20"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFilePath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "/etc/portal.json"}, want: "/etc/portal.json"},
		{name: "long", args: []string{"-config", "/etc/portal.json"}, want: "/etc/portal.json"},
		{name: "equals", args: []string{"-config=/etc/portal.json"}, want: "/etc/portal.json"},
		{name: "absent", args: []string{"-s", "portal.db"}, want: ""},
		{name: "last wins", args: []string{"-c", "1.json", "-config", "2.json"}, want: "2.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFilePath(tt.args))
		})
	}
}
