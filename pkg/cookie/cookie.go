package cookie

import (
	"iter"
	"strings"
)

// spaceChars are trimmed from both edges of cookie names and values.
const spaceChars = " \t\r\n"

var (
	encoder = strings.NewReplacer("%", "%25", ";", "%3B")
	decoder = strings.NewReplacer("%3B", ";", "%25", "%")
)

// Encode escapes the reserved characters ';' and '%' so the result can be
// placed into a cookie string without colliding with the delimiter grammar.
// Encoding an already encoded string escapes the '%' introduced by the first pass.
func Encode(s string) string {
	if !strings.ContainsAny(s, "%;") {
		return s
	}
	return encoder.Replace(s)
}

// Decode is the exact inverse of Encode. Only the "%3B" and "%25" escapes are
// honored, any other percent sequence is left untouched.
func Decode(s string) string {
	if strings.IndexByte(s, '%') == -1 {
		return s
	}
	return decoder.Replace(s)
}

// Parse returns the cookies contained in the Cookie header lines (or a
// document.cookie-like string) as a name-value map. Segments without '=' are
// skipped and the last occurrence of a repeated name wins.
func Parse(lines ...string) map[string]string {
	record := make(map[string]string)
	for name, value := range pairs(join(lines)) {
		record[Decode(trim(name))] = Decode(trim(value))
	}
	return record
}

// Names returns the unique cookie names in order of first appearance.
func Names(lines ...string) []string {
	var names []string
	seen := make(map[string]struct{})
	for name := range pairs(join(lines)) {
		name = Decode(trim(name))
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Get returns the value of the first cookie named name. Whitespace around the
// name, in the query and in the source, is ignored; every other byte must
// match exactly.
// The boolean result reports whether such a cookie exists.
func Get(name string, lines ...string) (string, bool) {
	text := join(lines)
	if text == "" {
		return "", false
	}

	name = Encode(trim(name))
	for rawName, rawValue := range pairs(text) {
		if trim(rawName) == name {
			return Decode(trim(rawValue)), true
		}
	}
	return "", false
}

// Has reports whether a cookie named name exists.
func Has(name string, lines ...string) bool {
	_, ok := Get(name, lines...)
	return ok
}

// join concatenates multiple header lines with ';'. A single line is returned
// as is so the common case does not allocate.
func join(lines []string) string {
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return lines[0]
	default:
		return strings.Join(lines, ";")
	}
}

// pairs yields the raw (untrimmed, still encoded) name and value of every
// ';'-delimited segment holding an '='.
func pairs(text string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for len(text) > 0 {
			var segment string
			segment, text, _ = strings.Cut(text, ";")

			name, value, ok := strings.Cut(segment, "=")
			if !ok {
				continue
			}
			if !yield(name, value) {
				return
			}
		}
	}
}

func trim(s string) string {
	return strings.Trim(s, spaceChars)
}
