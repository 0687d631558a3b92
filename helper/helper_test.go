package helper

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "RPG,Action", []string{"RPG", "Action"}},
		{"single token", "RPG", []string{"RPG"}},
		{"spaces trimmed", "RPG, Action , Adventure", []string{"RPG", "Action", "Adventure"}},
		{"empty tokens dropped", "RPG,,Action,", []string{"RPG", "Action"}},
		{"empty input", "", []string{}},
		{"only separators", ", ,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}

func TestFlattenForm(t *testing.T) {
	form := url.Values{
		"name":     {"Hollow Knight"},
		"genre":    {"Metroidvania"},
		"imageUrl": {"https://example.com/hk.png"},
		"repeated": {"first", "second"},
	}

	doc := FlattenForm(form)

	assert.Equal(t, "Hollow Knight", doc["name"])
	assert.Equal(t, "Metroidvania", doc["genre"])
	assert.Equal(t, "https://example.com/hk.png", doc["imageUrl"])
	assert.Equal(t, "first", doc["repeated"], "only the first value of a field is kept")
	assert.Len(t, doc, 4)
}
