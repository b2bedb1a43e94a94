// Package slug derives URL-safe article and course slugs from titles.
//
// A slug is the lower-cased title with everything outside [a-z0-9] removed,
// whitespace runs collapsed to single hyphens, and a base-36 timestamp
// appended so two articles with the same title never collide. Han characters
// are transliterated to pinyin before the stripping pass so CJK titles keep
// a readable slug instead of collapsing to the bare timestamp.
package slug

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

var pinyinArgs = pinyin.NewArgs()

// Make derives a slug from title. Slugs are immutable once stored; callers
// must never regenerate one for an existing record.
func Make(title string) string {
	return makeAt(title, time.Now())
}

func makeAt(title string, now time.Time) string {
	base := normalize(title)
	suffix := strconv.FormatInt(now.UnixNano(), 36)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// normalize lower-cases, transliterates Han runes and reduces the result to
// hyphen-separated [a-z0-9] words.
func normalize(title string) string {
	var expanded strings.Builder
	for _, r := range title {
		if unicode.Is(unicode.Han, r) {
			if ps := pinyin.LazyPinyin(string(r), pinyinArgs); len(ps) > 0 {
				expanded.WriteByte(' ')
				expanded.WriteString(ps[0])
				expanded.WriteByte(' ')
			}
			continue
		}
		expanded.WriteRune(r)
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(expanded.String()) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingHyphen = true
		}
	}
	return b.String()
}
