package translit

import (
	"strings"
	"testing"
	"unicode"
)

func TestLatinMapsEveryTableRune(t *testing.T) {
	for _, pair := range pairs {
		got := Latin(pair.cyr)
		if got != pair.lat {
			t.Errorf("Latin(%q) = %q, want %q", pair.cyr, got, pair.lat)
		}
	}
}

func TestLatinOutputContainsNoCyrillic(t *testing.T) {
	names := []string{
		"фотография.jpg",
		"Отпуск 2019.jpeg",
		"день рождения ёлка.jpg",
		"ЩУКА.JPG",
	}
	for _, name := range names {
		got := Latin(name)
		for _, r := range got {
			if unicode.Is(unicode.Cyrillic, r) {
				t.Errorf("Latin(%q) = %q still contains Cyrillic %q", name, got, r)
			}
		}
	}
}

func TestLatinKeepsNonCyrillicUntouched(t *testing.T) {
	names := []string{"photo 2023.jpg", "IMG_0042.JPEG", "a-b_c (1).txt"}
	for _, name := range names {
		if got := Latin(name); got != name {
			t.Errorf("Latin(%q) = %q, want unchanged", name, got)
		}
	}
}

func TestCyrillicRoundTrip(t *testing.T) {
	// Uppercase hard/soft signs share a Latin value with their lowercase
	// form, so the round-trip holds for everything else.
	names := []string{
		"январь.jpg",
		"жизнь щенка",
		"Москва Ёж Юла",
		"подъезд",
	}
	for _, name := range names {
		lat := Latin(name)
		if got := Cyrillic(lat); got != name {
			t.Errorf("Cyrillic(Latin(%q)): got %q via %q", name, got, lat)
		}
	}
}

func TestCyrillicPrefersLongestDigraph(t *testing.T) {
	cases := map[string]string{
		"sch": "щ",
		"sh":  "ш",
		"ch":  "ч",
		"zh":  "ж",
		"ju":  "ю",
		"ja":  "я",
		"yo":  "ё",
		"e'":  "э",
	}
	for lat, cyr := range cases {
		if got := Cyrillic(lat); got != cyr {
			t.Errorf("Cyrillic(%q) = %q, want %q", lat, got, cyr)
		}
	}
}

func TestCyrillicLeavesExtensionUntouched(t *testing.T) {
	cases := map[string]string{
		"schuka.jpg":   "щука.jpg",
		"janvar'.jpeg": "январь.jpeg",
		"plain":        "плаин",
		".profile":     ".профиле",
	}
	for lat, cyr := range cases {
		if got := Cyrillic(lat); got != cyr {
			t.Errorf("Cyrillic(%q) = %q, want %q", lat, got, cyr)
		}
	}
}

func TestLatinNormalizesDecomposedInput(t *testing.T) {
	// й as и followed by combining breve, the form macOS stores in names.
	decomposed := "йод.jpg"
	if got := Latin(decomposed); got != "jod.jpg" {
		t.Errorf("Latin(%q) = %q, want %q", decomposed, got, "jod.jpg")
	}
}

func TestTransformerHandlesChunkedInput(t *testing.T) {
	// transform.String feeds the transformer in chunks internally; a long
	// name exercises the short-source paths around digraph boundaries.
	name := strings.Repeat("щука и ёж ", 500)
	lat := Latin(name)
	if strings.ContainsAny(lat, "щюёий") {
		t.Fatalf("long input left Cyrillic in output")
	}
	if got := Cyrillic(lat); got != name {
		t.Fatalf("long round-trip mismatch")
	}
}
