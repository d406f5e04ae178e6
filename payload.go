package context7

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Payloads returned by the documentation service are untyped JSON values:
// map[string]any, []any, string, float64, bool or nil. Only a few optional
// fields are ever inspected.

// Field returns the value stored under key when p is a map.
func Field(p any, key string) (any, bool) {
	m, ok := p.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

// StringField returns the string stored under key when p is a map.
// Non-string values are rendered with Stringify.
func StringField(p any, key string) (string, bool) {
	v, ok := Field(p, key)
	if !ok {
		return "", false
	}
	return Stringify(v), true
}

// Content returns the content field of p, falling back to the whole
// payload rendered as a string.
func Content(p any) string {
	if s, ok := StringField(p, "content"); ok {
		return s
	}
	return Stringify(p)
}

// LibraryID returns the libraryId field of a resolution payload.
func LibraryID(p any) (string, bool) {
	id, ok := StringField(p, "libraryId")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ResolvedLibraryID returns the library ID a resolution payload points at:
// its libraryId field, else the first ID listed in its text content.
func ResolvedLibraryID(p any) (string, bool) {
	if id, ok := LibraryID(p); ok {
		return id, true
	}
	content, ok := Field(p, "content")
	if !ok {
		return "", false
	}
	text, ok := content.(string)
	if !ok {
		return "", false
	}
	if ids := ListedLibraryIDs(text); len(ids) > 0 {
		return ids[0], true
	}
	return "", false
}

// Stringify renders a payload for display. Strings are returned as-is,
// nil becomes the empty string and everything else is compact JSON.
func Stringify(p any) string {
	switch v := p.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	s, err := encodeJSON(p, "")
	if err != nil {
		return fmt.Sprint(p)
	}
	return s
}

// SortedKeys returns the keys of a map payload in lexical order.
// Returns nil when p is not a map.
func SortedKeys(p any) []string {
	m, ok := p.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var listedLibraryID = regexp.MustCompile(`(?m)Context7-compatible library ID:\s*(/\S+)`)

// ListedLibraryIDs extracts library IDs from the plain-text listing that
// the Context7 server returns for resolve-library-id.
func ListedLibraryIDs(text string) []string {
	matches := listedLibraryID.FindAllStringSubmatch(text, -1)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}

// FormatJSON renders p as JSON indented by two spaces. HTML characters are
// left unescaped so documentation snippets stay readable.
func FormatJSON(p any) (string, error) {
	s, err := encodeJSON(p, "  ")
	if err != nil {
		return "", Errorf(EINVALID, "payload is not JSON-encodable: %s", err)
	}
	return s, nil
}

func encodeJSON(p any, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
