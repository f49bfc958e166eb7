package flagx

import (
	"os"
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
			args:    []string{"-a", "localhost:3000", "-x", "noise"},
			allowed: []string{"-a"},
			want:    []string{"-a", "localhost:3000"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=releve.json", "-v"},
			allowed: []string{"--config"},
			want:    []string{"--config=releve.json"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-a", "-b", "val"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "x", "-b", "y"},
			allowed: []string{"-z"},
			want:    []string{},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestJSONConfigFlags(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"releve", "-a", "localhost:3000", "-c", "conf.json"}
	assert.Equal(t, "conf.json", JSONConfigFlags())

	os.Args = []string{"releve", "-config=other.json"}
	assert.Equal(t, "other.json", JSONConfigFlags())

	os.Args = []string{"releve"}
	assert.Equal(t, "", JSONConfigFlags())
}
