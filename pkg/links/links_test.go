package links

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	cases := map[string]string{
		"":                         "",
		"   ":                      "",
		"example.com":              "https://example.com",
		"  example.com/path ":      "https://example.com/path",
		"http://example.com":       "http://example.com",
		"HTTPS://Example.com":      "HTTPS://Example.com",
		"//cdn.example.com":        "https://cdn.example.com",
		"mailto:me@example.com":    "mailto:me@example.com",
		"github.com/goliatone":     "https://github.com/goliatone",
		"linkedin.com/in/someone/": "https://linkedin.com/in/someone/",
	}
	for in, want := range cases {
		require.Equal(t, want, NormalizeURL(in), in)
	}
}

func TestNormalizeURL_Idempotent(t *testing.T) {
	inputs := []string{
		"", " ", "example.com", "https://x.io", "ftp://files", "://broken",
		"1http://odd", "//proto-relative", " tel:+123 ", "weird value with spaces",
		"localhost:8080", "a://b://c",
	}
	for _, in := range inputs {
		once := NormalizeURL(in)
		require.Equal(t, once, NormalizeURL(once), in)
	}
}
