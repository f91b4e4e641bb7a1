package translit

// The transliteration table, declared as Cyrillic/Latin pairs. The reversed
// direction is derived from the same pairs so the mapping stays in sync.
// Digraphs (zh, ch, sh, sch, ...) are matched longest-first when reversing.
//
// Lowercase pairs come first: when two pairs share a Latin value (the hard
// and soft signs), reversing prefers the earlier entry.
var pairs = []struct {
	cyr string
	lat string
}{
	{"а", "a"}, {"б", "b"}, {"в", "v"}, {"г", "g"}, {"д", "d"},
	{"е", "e"}, {"ё", "yo"}, {"ж", "zh"}, {"з", "z"}, {"и", "i"},
	{"й", "j"}, {"к", "k"}, {"л", "l"}, {"м", "m"}, {"н", "n"},
	{"о", "o"}, {"п", "p"}, {"р", "r"}, {"с", "s"}, {"т", "t"},
	{"у", "u"}, {"ф", "f"}, {"х", "h"}, {"ц", "c"}, {"ч", "ch"},
	{"ш", "sh"}, {"щ", "sch"}, {"ъ", "''"}, {"ы", "y"}, {"ь", "'"},
	{"э", "e'"}, {"ю", "ju"}, {"я", "ja"},

	{"А", "A"}, {"Б", "B"}, {"В", "V"}, {"Г", "G"}, {"Д", "D"},
	{"Е", "E"}, {"Ё", "Yo"}, {"Ж", "Zh"}, {"З", "Z"}, {"И", "I"},
	{"Й", "J"}, {"К", "K"}, {"Л", "L"}, {"М", "M"}, {"Н", "N"},
	{"О", "O"}, {"П", "P"}, {"Р", "R"}, {"С", "S"}, {"Т", "T"},
	{"У", "U"}, {"Ф", "F"}, {"Х", "H"}, {"Ц", "C"}, {"Ч", "Ch"},
	{"Ш", "Sh"}, {"Щ", "Sch"}, {"Ъ", "''"}, {"Ы", "Y"}, {"Ь", "'"},
	{"Э", "E'"}, {"Ю", "Ju"}, {"Я", "Ja"},
}

type reverseEntry struct {
	lat string
	cyr string
}

var (
	cyrillicToLatin map[rune]string
	latinToCyrillic []reverseEntry
	maxLatinLen     int
)

func init() {
	cyrillicToLatin = make(map[rune]string, len(pairs))
	seen := make(map[string]bool, len(pairs))

	for _, pair := range pairs {
		r := []rune(pair.cyr)[0]
		cyrillicToLatin[r] = pair.lat

		if seen[pair.lat] {
			continue
		}
		seen[pair.lat] = true
		latinToCyrillic = append(latinToCyrillic, reverseEntry{lat: pair.lat, cyr: pair.cyr})
		if len(pair.lat) > maxLatinLen {
			maxLatinLen = len(pair.lat)
		}
	}

	// Longest-first so digraphs win over their single-letter prefixes.
	sortReverseEntries(latinToCyrillic)
}

func sortReverseEntries(entries []reverseEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && len(entries[j].lat) > len(entries[j-1].lat); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}
