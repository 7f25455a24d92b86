package urlspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand_SizeIsPathsTimesExtensions(t *testing.T) {
	g := NewGenerator("http://example.test", []string{NoExtension, ".php", ".html"})

	urls := g.Expand([]string{"admin", "login", "backup", "api"})

	assert.Len(t, urls, 4*3)
}

func TestExpand_SingleLeadingSeparator(t *testing.T) {
	g := NewGenerator("http://example.test/", []string{NoExtension})

	urls := g.Expand([]string{"admin", "/admin2", "//admin3"})

	assert.Equal(t, []string{
		"http://example.test/admin",
		"http://example.test/admin2",
		"http://example.test/admin3",
	}, urls)
}

func TestExpand_AppendsExtensions(t *testing.T) {
	g := NewGenerator("https://host", []string{NoExtension, ".php"})

	urls := g.Expand([]string{"index"})

	assert.Equal(t, []string{"https://host/index", "https://host/index.php"}, urls)
}

func TestExpand_EmptyPathsYieldsEmpty(t *testing.T) {
	g := NewGenerator("http://example.test", []string{NoExtension, ".bak"})

	assert.Empty(t, g.Expand(nil))
}

func TestNewGenerator_DefaultsToBarePathSentinel(t *testing.T) {
	g := NewGenerator("http://example.test", nil)

	assert.Equal(t, []string{NoExtension}, g.Extensions)
}

func TestParseExtensions(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []string
	}{
		{"empty spec", "", []string{""}},
		{"plain names", "php,html", []string{"", ".php", ".html"}},
		{"already dotted", ".php, .bak", []string{"", ".php", ".bak"}},
		{"stray commas", "php,,html,", []string{"", ".php", ".html"}},
		{"whitespace", "  php , txt ", []string{"", ".php", ".txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseExtensions(tt.spec))
		})
	}
}
