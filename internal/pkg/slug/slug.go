package slug

import "strings"

// Slugify lower-cases s, collapses every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens from both ends.
//
//	Slugify("Latest Jobs")      == "latest-jobs"
//	Slugify("  SSC -- GD 2026") == "ssc-gd-2026"
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
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

// Valid reports whether s is already in slug form.
func Valid(s string) bool {
	return s != "" && Slugify(s) == s
}
