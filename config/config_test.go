package config

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestMaskSensitiveValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: "(not set)"},
		{name: "short values fully masked", value: "abcd", want: "****"},
		{name: "long values keep a prefix", value: "secret-token-123", want: "secr************"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.want, maskSensitiveValue(tt.value))
		})
	}
}

func TestSetConfig(t *testing.T) {
	m := New()
	m.SetConfig(Config{
		Endpoint:       "http://localhost:8080",
		Token:          "secret-token-123",
		PayeePrincipal: "aaaaa-aa",
		Name:           "alice",
		Email:          "alice@example.com",
	})

	rows := m.configTable.Rows()
	be.Equal(t, 6, len(rows))

	// token is masked in the view
	be.Equal(t, "Token", rows[2][0])
	be.Equal(t, "secr************", rows[2][1])

	be.Equal(t, "Payee Principal", rows[3][0])
	be.Equal(t, "aaaaa-aa", rows[3][1])
}
