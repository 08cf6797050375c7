package reconcile

import (
	"reflect"
	"testing"
)

func TestFlagResolverResolveCode(t *testing.T) {
	t.Parallel()

	resolver := NewFlagResolver("")
	tests := []struct {
		name       string
		candidates []any
		want       string
	}{
		{name: "iso2", candidates: []any{"BR"}, want: "br"},
		{name: "iso3", candidates: []any{"USA"}, want: "us"},
		{name: "english name", candidates: []any{"Brazil"}, want: "br"},
		{name: "german name", candidates: []any{"Brasilien"}, want: "br"},
		{name: "skips empty candidates", candidates: []any{nil, "", "Uganda"}, want: "ug"},
		{name: "punctuation cleaned", candidates: []any{"Brazil."}, want: "br"},
		{name: "unknown falls back", candidates: []any{"Atlantis"}, want: DefaultFlagCode},
		{name: "nothing", candidates: nil, want: DefaultFlagCode},
		{name: "norway upper", candidates: []any{"NO"}, want: "no"},
		{name: "norway lower", candidates: []any{"no"}, want: "no"},
		{name: "norway mixed", candidates: []any{" No "}, want: "no"},
		{name: "skips false and zero", candidates: []any{false, 0, 0.0, "NZ"}, want: "nz"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := resolver.ResolveCode(tc.candidates...); got != tc.want {
				t.Fatalf("ResolveCode(%v) = %q, want %q", tc.candidates, got, tc.want)
			}
		})
	}
}

func TestFlagResolverCustomDefault(t *testing.T) {
	t.Parallel()

	if got := NewFlagResolver("GB").ResolveCode("Atlantis"); got != "gb" {
		t.Fatalf("expected custom default, got %q", got)
	}
	if got := NewFlagResolver("not-a-code").DefaultCode(); got != DefaultFlagCode {
		t.Fatalf("expected invalid default to fall back, got %q", got)
	}
}

func TestFlagResolverAssets(t *testing.T) {
	t.Parallel()

	resolver := NewFlagResolver(DefaultFlagCode)

	got := resolver.Assets("BR", "Charles Oliveira", "http://cdn.example.com/br.png", nil)
	want := []string{"/flags/br.svg", "/flags/br.png", "https://cdn.example.com/br.png", "/flags/default.svg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected assets:\n got %v\nwant %v", got, want)
	}

	got = resolver.Assets("xx", "")
	want = []string{"/flags/xx.svg", "/flags/xx.png", "/flags/default.svg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected assets for unbundled code:\n got %v\nwant %v", got, want)
	}
}

func TestSanitizeImageURL(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                          "",
		"  //cdn.example.com/a.png": "https://cdn.example.com/a.png",
		"http://cdn.example.com/a":  "https://cdn.example.com/a",
		"https://cdn.example.com/a": "https://cdn.example.com/a",
		"/assets/local.avif":        "/assets/local.avif",
	}
	for in, want := range tests {
		if got := SanitizeImageURL(in); got != want {
			t.Fatalf("SanitizeImageURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAssetIndexResolveBundled(t *testing.T) {
	t.Parallel()

	index := NewAssetIndex()
	if index.Len() == 0 {
		t.Fatalf("expected bundled assets to be indexed")
	}

	tests := []struct {
		name string
		want string
	}{
		{name: "Steve Garcia", want: "/assets/fighters/GARCIA_STEVE_L_09-07.avif"},
		{name: "David Onama", want: "/assets/fighters/ONAMA_DAVID_R_04-26.avif"},
		{name: "Jack Della Maddalena", want: "/assets/fighters/DELLA_MADDALENA_JACK_L_BELTMOCK.avif"},
		{name: "Mansur Abdul-Malik", want: "/assets/fighters/ABDUL-MALIK_MANSUR_L_06-14.avif"},
		{name: "Zhang Weili", want: "/assets/fighters/WEILI_ZHANG_R_06-11.avif"},
	}
	for _, tc := range tests {
		got, ok := index.Resolve(tc.name)
		if !ok || got != tc.want {
			t.Fatalf("Resolve(%q) = (%q, %v), want %q", tc.name, got, ok, tc.want)
		}
	}

	if _, ok := index.Resolve("Zzyzx Qwertyuiop"); ok {
		t.Fatalf("expected unknown fighter to miss")
	}
}

func TestAssetIndexFirstFileKeepsVariant(t *testing.T) {
	t.Parallel()

	index := BuildAssetIndex([]string{
		"SMITH_JOHN_L_01-01.avif",
		"SMITH_JANE_R_02-02.avif",
		"",
	})

	if got, _ := index.Resolve("Jane Smith"); got != "/assets/fighters/SMITH_JANE_R_02-02.avif" {
		t.Fatalf("expected full-name match, got %q", got)
	}
	if got, _ := index.Resolve("Bob Smith"); got != "/assets/fighters/SMITH_JOHN_L_01-01.avif" {
		t.Fatalf("expected last-name match to keep the first file, got %q", got)
	}
	if _, ok := index.Resolve(""); ok {
		t.Fatalf("expected empty name to miss")
	}
}

func TestEscapeAssetFileKeepsEncodedSegments(t *testing.T) {
	t.Parallel()

	got := escapeAssetFile("7c76e7f9%2FDAUKAUS_KYLE_L_06-18.avif")
	if got != "7c76e7f9%252FDAUKAUS_KYLE_L_06-18.avif" {
		t.Fatalf("unexpected escaped file: %q", got)
	}
	name, ok := decodeAssetName("7c76e7f9%2FDAUKAUS_KYLE_L_06-18.avif")
	if !ok || name.full != "Kyle Daukaus" {
		t.Fatalf("unexpected decoded name: %+v", name)
	}
}
