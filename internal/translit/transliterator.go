// Package translit renders Cyrillic text in Latin script and back using a
// fixed, reversible character table.
package translit

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ToLatin returns a transformer that transliterates Cyrillic to Latin.
// Input is NFC-normalized first so decomposed characters (й stored as
// и + U+0306) map like their composed form.
func ToLatin() transform.Transformer {
	return transform.Chain(norm.NFC, toLatin{})
}

// ToCyrillic returns the reversed transformer, Latin back to Cyrillic,
// matching digraphs longest-first.
func ToCyrillic() transform.Transformer {
	return transform.Chain(norm.NFC, toCyrillic{})
}

// Latin transliterates s to Latin script. Characters outside the table pass
// through untouched.
func Latin(s string) string {
	out, _, err := transform.String(ToLatin(), s)
	if err != nil {
		return s
	}
	return out
}

// Cyrillic applies the reversed table to the base name of s. The extension
// is passed through untouched so ASCII extensions like .jpg survive the
// round trip through Latin.
func Cyrillic(s string) string {
	ext := filepath.Ext(s)
	base := strings.TrimSuffix(s, ext)
	if base == "" {
		// dotfiles have no base to speak of, map the whole name
		base, ext = s, ""
	}
	out, _, err := transform.String(ToCyrillic(), base)
	if err != nil {
		return s
	}
	return out + ext
}

type toLatin struct {
	transform.NopResetter
}

func (toLatin) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		rep, ok := cyrillicToLatin[r]
		if !ok {
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
			continue
		}

		if nDst+len(rep) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], rep)
		nSrc += size
	}
	return nDst, nSrc, nil
}

type toCyrillic struct {
	transform.NopResetter
}

func (toCyrillic) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		rest := src[nSrc:]

		entry, ok, short := matchReverse(rest, atEOF)
		if short {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if ok {
			if nDst+len(entry.cyr) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], entry.cyr)
			nSrc += len(entry.lat)
			continue
		}

		r, size := utf8.DecodeRune(rest)
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(rest) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], rest[:size])
		nSrc += size
	}
	return nDst, nSrc, nil
}

// matchReverse finds the longest table entry prefixing rest. It reports
// short=true when rest ends mid-chunk and a longer entry could still match
// with more input.
func matchReverse(rest []byte, atEOF bool) (entry reverseEntry, ok, short bool) {
	for _, candidate := range latinToCyrillic {
		if len(candidate.lat) > len(rest) {
			if !atEOF && strings.HasPrefix(candidate.lat, string(rest)) {
				return reverseEntry{}, false, true
			}
			continue
		}
		if string(rest[:len(candidate.lat)]) == candidate.lat {
			return candidate, true, false
		}
	}
	return reverseEntry{}, false, false
}
