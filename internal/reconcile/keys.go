// Package reconcile turns raw multi-source combat-sports records into
// canonical fights and cards. Every function here is pure and degrades to a
// documented default instead of failing.
package reconcile

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/riskibarqy/fightcard/internal/domain/raw"
)

// Directory key namespaces.
const (
	NamespaceID       = "id"
	NamespaceName     = "name"
	NamespaceLastName = "lastname"
)

// NormalizeKey lowercases v, folds accented letters to their base letter and
// drops everything outside [a-z0-9].
func NormalizeKey(v any) string {
	text := strings.ToLower(raw.Text(v))
	if text == "" {
		return ""
	}

	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	if folded, _, err := transform.String(folder, text); err == nil {
		text = folded
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DirectoryKey namespaces a normalized key. Empty input yields "".
func DirectoryKey(v any, namespace string) string {
	key := NormalizeKey(v)
	if key == "" {
		return ""
	}
	return namespace + ":" + key
}
