package domain

import "strings"

// JpegExtensions are the extensions exifdate matches by default.
var JpegExtensions = []string{".jpg", ".jpeg"}

func IsJpegExtension(ext string) bool {
	return MatchesExtension(ext, JpegExtensions)
}

// MatchesExtension reports whether ext equals one of the candidates,
// case-insensitively. Candidates are expected with a leading dot.
func MatchesExtension(ext string, candidates []string) bool {
	for _, candidate := range candidates {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
}
