package helper

import (
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// SplitList turns a single comma-separated form field ("RPG,Action")
// into an ordered list of tokens. Tokens are trimmed and empty tokens
// dropped, so "RPG, Action," comes out as ["RPG" "Action"].
func SplitList(s string) []string {
	parts := strings.Split(s, ",")

	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// FlattenForm converts a submitted form into a document, keeping the
// first value of each field. The videogame schema is permissive: every
// submitted field is stored as given.
func FlattenForm(form url.Values) bson.M {
	doc := bson.M{}
	for key, values := range form {
		if len(values) == 0 {
			continue
		}
		doc[key] = values[0]
	}
	return doc
}
