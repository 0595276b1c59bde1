package services

import (
	"crypto/rand"
	"regexp"
	"strings"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

const slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const slugSuffixLen = 8

// generateSlug kebab-cases the name and appends an 8-character random
// suffix. Collisions are accepted as negligible and not re-checked.
func generateSlug(name string) string {
	base := strings.ToLower(name)
	base = slugStrip.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	buf := make([]byte, slugSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; keep the
		// zero bytes and map them through the alphabet anyway.
		_ = err
	}
	for i, b := range buf {
		buf[i] = slugSuffixAlphabet[int(b)%len(slugSuffixAlphabet)]
	}

	if base == "" {
		return string(buf)
	}
	return base + "-" + string(buf)
}

// packageNameFor derives the synthesized package identifier from a slug.
func packageNameFor(slug string) string {
	return "com.clickngoai." + strings.ReplaceAll(slug, "-", "_")
}
