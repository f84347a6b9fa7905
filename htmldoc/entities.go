package htmldoc

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var numericEntity = regexp.MustCompile(`&#([0-9]+);`)

// namedEntities are applied one after another, in this order, after numeric
// references. A sequence such as "&amp;lt;" therefore decodes all the way to
// "<".
var namedEntities = []struct {
	entity string
	value  string
}{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
}

// DecodeEntities replaces decimal character references and the basic named
// entities in s. Any other entity, including hexadecimal references and
// named entities outside the basic set, is left as written.
//
// A decimal reference outside the Unicode range, or naming a surrogate,
// decodes to U+FFFD.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	s = numericEntity.ReplaceAllStringFunc(s, func(m string) string {
		n, err := strconv.ParseInt(m[2:len(m)-1], 10, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return string(utf8.RuneError)
		}
		return string(rune(n))
	})

	for _, e := range namedEntities {
		s = strings.ReplaceAll(s, e.entity, e.value)
	}
	return s
}
