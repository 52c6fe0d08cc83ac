package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "no flags", args: nil, want: ""},
		{name: "long flag", args: []string{"--addr", "127.0.0.1:9000"}, want: "127.0.0.1:9000"},
		{name: "long flag with equals", args: []string{"--addr=:8081"}, want: ":8081"},
		{name: "shorthand", args: []string{"-a", ":7000"}, want: ":7000"},
		{name: "unknown flag", args: []string{"--port", "1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
