package reconcile

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	fighterAssetPrefix = "/assets/fighters/"
	// ShadowFallbackImage is the silhouette used when no fighter image resolves.
	ShadowFallbackImage = fighterAssetPrefix + "SHADOW_Fighter_fullLength_BLUE.avif"
	// DefaultAvatarImage is the last image candidate for every fighter.
	DefaultAvatarImage = fighterAssetPrefix + "default-avatar.png"
)

var (
	fileExtension  = regexp.MustCompile(`\.[^.]+$`)
	numericToken   = regexp.MustCompile(`^[0-9\-]+$`)
	assetStopWords = map[string]struct{}{
		"L": {}, "R": {}, "BLUE": {}, "RED": {}, "SILH": {}, "SILHOUETTE": {}, "CARD": {},
		"BELT": {}, "BELTMOCK": {}, "MOCK": {}, "TITLE": {}, "CHAMP": {}, "CHAMPIONSHIP": {},
	}
)

// AssetIndex maps normalized fighter names to bundled image paths. Build it
// once and share it; it is read-only after construction.
type AssetIndex struct {
	paths map[string]string
}

// NewAssetIndex indexes the bundled fighter images.
func NewAssetIndex() *AssetIndex {
	return BuildAssetIndex(fighterAssetFiles)
}

// BuildAssetIndex indexes files named like LAST_FIRST_L_06-18.avif. The
// first file to claim a name variant keeps it.
func BuildAssetIndex(files []string) *AssetIndex {
	index := &AssetIndex{paths: make(map[string]string, len(files)*5)}
	for _, file := range files {
		if file == "" {
			continue
		}
		name, ok := decodeAssetName(file)
		if !ok {
			continue
		}
		path := fighterAssetPrefix + escapeAssetFile(file)
		variants := []string{
			name.full,
			name.first + " " + name.last,
			name.last + " " + name.first,
			name.last,
			name.first,
		}
		for _, variant := range variants {
			key := NormalizeKey(variant)
			if key == "" {
				continue
			}
			if _, exists := index.paths[key]; !exists {
				index.paths[key] = path
			}
		}
	}
	return index
}

// Len returns the number of indexed name variants.
func (a *AssetIndex) Len() int {
	if a == nil {
		return 0
	}
	return len(a.paths)
}

// Resolve finds the bundled image for a display name: whole name, then the
// last token, then first and last tokens joined.
func (a *AssetIndex) Resolve(name string) (string, bool) {
	if a == nil || name == "" {
		return "", false
	}
	if path, ok := a.paths[NormalizeKey(name)]; ok {
		return path, true
	}
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", false
	}
	last := parts[len(parts)-1]
	if path, ok := a.paths[NormalizeKey(last)]; ok {
		return path, true
	}
	if path, ok := a.paths[NormalizeKey(parts[0]+last)]; ok {
		return path, true
	}
	return "", false
}

type assetName struct {
	full  string
	first string
	last  string
}

func decodeAssetName(file string) (assetName, bool) {
	decoded, err := url.PathUnescape(file)
	if err != nil {
		decoded = file
	}
	decoded = fileExtension.ReplaceAllString(decoded, "")

	kept := make([]string, 0, 4)
	for _, token := range strings.Split(decoded, "_") {
		if token == "" {
			continue
		}
		if idx := strings.LastIndex(token, "/"); idx >= 0 {
			token = token[idx+1:]
		}
		if _, stop := assetStopWords[strings.ToUpper(token)]; stop {
			break
		}
		if numericToken.MatchString(token) {
			break
		}
		kept = append(kept, token)
	}
	if len(kept) == 0 {
		return assetName{}, false
	}

	first := titleCaseToken(kept[len(kept)-1])
	lastParts := make([]string, 0, len(kept)-1)
	for _, token := range kept[:len(kept)-1] {
		lastParts = append(lastParts, titleCaseToken(token))
	}
	last := strings.Join(lastParts, " ")
	full := strings.TrimSpace(strings.Join(nonEmpty(first, last), " "))
	if full == "" {
		return assetName{}, false
	}
	return assetName{full: full, first: first, last: last}, true
}

func escapeAssetFile(file string) string {
	if strings.Contains(file, "%") {
		return strings.ReplaceAll(file, "%", "%25")
	}
	return url.PathEscape(file)
}

func titleCaseToken(token string) string {
	caser := cases.Title(language.Und)
	segments := strings.Split(token, "-")
	for i, segment := range segments {
		if segment != "" {
			segments[i] = caser.String(segment)
		}
	}
	return strings.Join(segments, "-")
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
