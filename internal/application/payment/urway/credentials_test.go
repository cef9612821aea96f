package urway

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentials_Valid(t *testing.T) {
	creds := Credentials{
		MerchantKey: "M1",
		TerminalID:  "T1",
		Password:    "P1",
		RequestURL:  "https://gateway.example.com",
	}
	assert.True(t, creds.Valid())

	for _, incomplete := range []Credentials{
		{TerminalID: "T1", Password: "P1", RequestURL: "https://g"},
		{MerchantKey: "M1", Password: "P1", RequestURL: "https://g"},
		{MerchantKey: "M1", TerminalID: "T1", RequestURL: "https://g"},
		{MerchantKey: "M1", TerminalID: "T1", Password: "P1"},
	} {
		assert.False(t, incomplete.Valid())
	}
}

func TestCredentials_StringRedactsSecrets(t *testing.T) {
	creds := Credentials{
		MerchantKey: "super-secret-key",
		TerminalID:  "T1",
		Password:    "super-secret-password",
		RequestURL:  "https://gateway.example.com",
	}

	s := creds.String()
	assert.NotContains(t, s, "super-secret-key")
	assert.NotContains(t, s, "super-secret-password")
	assert.Contains(t, s, "T1")
}

func TestCredentials_LogValueRedactsSecrets(t *testing.T) {
	creds := Credentials{
		MerchantKey: "super-secret-key",
		TerminalID:  "T1",
		Password:    "super-secret-password",
		RequestURL:  "https://gateway.example.com",
	}

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	log.Info("gateway configured", "credentials", creds)

	out := buf.String()
	assert.NotContains(t, out, "super-secret-key")
	assert.NotContains(t, out, "super-secret-password")
	assert.Contains(t, out, "T1")
}
