package reconcile

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/fightcard/internal/domain/raw"
)

// DefaultFlagCode is used when nothing resolves.
const DefaultFlagCode = "us"

const defaultFlagAsset = "/flags/default.svg"

var (
	twoLetterCode   = regexp.MustCompile(`^[A-Za-z]{2}$`)
	threeLetterCode = regexp.MustCompile(`^[A-Za-z]{3}$`)
	nonLetters      = regexp.MustCompile(`[^\p{L}\s]`)
)

// FlagResolver turns country hints into ISO2 codes and flag image candidates.
type FlagResolver struct {
	defaultCode string
}

// NewFlagResolver builds a resolver; an empty default falls back to "us".
func NewFlagResolver(defaultCode string) *FlagResolver {
	code := strings.ToLower(strings.TrimSpace(defaultCode))
	if !twoLetterCode.MatchString(code) {
		code = DefaultFlagCode
	}
	return &FlagResolver{defaultCode: code}
}

// DefaultCode returns the code used when nothing resolves.
func (f *FlagResolver) DefaultCode() string {
	if f == nil {
		return DefaultFlagCode
	}
	return f.defaultCode
}

// ResolveCode returns the ISO2 code of the first candidate that resolves.
func (f *FlagResolver) ResolveCode(candidates ...any) string {
	for _, candidate := range candidates {
		if code := resolveCountry(candidate); code != "" {
			return code
		}
	}
	return f.DefaultCode()
}

func resolveCountry(v any) string {
	if !raw.Present(v) {
		return ""
	}
	// Country text is never read as a yes/no flag: "NO" is Norway.
	if b, ok := v.(bool); ok && !b {
		return ""
	}
	if n, ok := raw.ToNumber(v); ok && n == 0 {
		if _, isText := v.(string); !isText {
			return ""
		}
	}
	text := strings.TrimSpace(raw.Text(v))
	if text == "" {
		return ""
	}
	if twoLetterCode.MatchString(text) {
		return strings.ToLower(text)
	}
	if threeLetterCode.MatchString(text) {
		if code, ok := iso3ToISO2[strings.ToUpper(text)]; ok {
			return code
		}
	}

	lower := strings.ToLower(text)
	if code, ok := countryNameToCode[lower]; ok {
		return code
	}
	cleaned := strings.Join(strings.Fields(nonLetters.ReplaceAllString(lower, " ")), " ")
	if code, ok := countryNameToCode[cleaned]; ok {
		return code
	}
	return ""
}

// Assets lists flag image candidates for code, most specific first,
// de-duplicated and ending with the default asset.
func (f *FlagResolver) Assets(code, name string, explicit ...any) []string {
	code = strings.ToLower(strings.TrimSpace(code))
	out := make([]string, 0, 6)
	seen := make(map[string]struct{}, 6)
	push := func(candidate string) {
		if candidate == "" {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	if code != "" {
		push(localFlagAssets[code])
		push(flagAssetPath(code, "svg"))
		push(flagAssetPath(code, "png"))
	}
	if override := NormalizeKey(name); override != "" {
		push(localFlagAssets[override])
	}
	for _, source := range explicit {
		push(SanitizeImageURL(raw.CleanText(source)))
	}
	push(defaultFlagAsset)
	return out
}

func flagAssetPath(code, ext string) string {
	return "/flags/" + code + "." + ext
}

// SanitizeImageURL trims u and upgrades protocol-relative and plain-http
// URLs to https.
func SanitizeImageURL(u string) string {
	u = strings.TrimSpace(u)
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case strings.HasPrefix(u, "http://"):
		return "https://" + strings.TrimPrefix(u, "http://")
	default:
		return u
	}
}
