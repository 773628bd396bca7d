package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// SHA256Hex returns the lowercase hex SHA-256 digest of s.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}

// Slugify lowercases s, collapses every run of non-alphanumeric characters into a single hyphen
// and strips leading and trailing hyphens. "Joe's  Deals & Co." becomes "joe-s-deals-co".
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)

			continue
		}
		pendingHyphen = true
	}

	return b.String()
}

// ClampPage normalises 1-based page numbers and page sizes coming from query strings.
func ClampPage(page, size, defaultSize, maxSize int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}

	return (page - 1) * size, size
}
