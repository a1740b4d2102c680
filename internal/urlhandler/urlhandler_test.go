package urlhandler

import (
	"testing"

	"github.com/aleister1102/phishscan/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected models.NormalizedURL
		ok       bool
	}{
		{name: "empty", input: "", ok: false},
		{name: "whitespace", input: "   ", ok: false},
		{name: "no dot host", input: "nodothost", ok: false},
		{name: "localhost", input: "http://localhost:8080", ok: false},
		{name: "scheme only", input: "https://", ok: false},
		{name: "www only", input: "www.", ok: false},
		{name: "bad host character", input: "exa mple.com", ok: false},
		{name: "bare domain", input: "example.com", expected: "https://example.com", ok: true},
		{name: "upper www", input: "WWW.Example.com", expected: "https://example.com", ok: true},
		{name: "http scheme", input: "http://example.com", expected: "https://example.com", ok: true},
		{name: "repeated www", input: "http://www.www.example.com", expected: "https://example.com", ok: true},
		{name: "mixed case scheme", input: "HTTPS://www.example.com", expected: "https://example.com", ok: true},
		{name: "surrounding whitespace", input: "  example.com \t", expected: "https://example.com", ok: true},
		{name: "path and query kept", input: "example.com/Login?next=/Home", expected: "https://example.com/Login?next=/Home", ok: true},
		{name: "port kept", input: "shop.example.com:8443/cart", expected: "https://shop.example.com:8443/cart", ok: true},
		{name: "ip address", input: "192.168.0.1/admin", expected: "https://192.168.0.1/admin", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"example.com",
		"WWW.Example.com",
		"http://www.paypal-login.example.net/verify?id=1",
		"https://sub.domain.org:8080/a/b#frag",
		"user@Example.COM/path",
		"www.www.example.com",
	}

	for _, in := range inputs {
		first, ok := Normalize(in)
		if !assert.True(t, ok, in) {
			continue
		}
		second, ok := Normalize(string(first))
		assert.True(t, ok, in)
		assert.Equal(t, first, second, in)
		assert.Equal(t, Host(first), Host(second), in)
	}
}

func TestNormalize_SameCanonicalForm(t *testing.T) {
	a, ok := Normalize("WWW.Example.com")
	assert.True(t, ok)
	b, ok := Normalize("http://example.com")
	assert.True(t, ok)
	assert.Equal(t, a, b)
}

func TestHost(t *testing.T) {
	assert.Equal(t, "example.com", Host("https://example.com/path"))
	assert.Equal(t, "shop.example.com", Host("https://shop.example.com:8443"))
}

func TestCanonicalize_DoesNotValidate(t *testing.T) {
	assert.Equal(t, "https://notadomain", Canonicalize("notadomain"))
	assert.Equal(t, "https://bad-site.net", Canonicalize("  www.bad-site.net "))
}
