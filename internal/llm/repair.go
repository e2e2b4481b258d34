package llm

import "strings"

// Repair makes a best effort to turn a truncated or lightly malformed
// generation response into strictly parseable JSON. It closes unterminated
// strings and unbalanced braces/brackets and strips trailing commas, using a
// single forward scan with no backtracking. The result is always re-parsed
// by a strict parser; repair failure surfaces there as a parse error.
func Repair(raw string) string {
	s := strings.TrimSpace(stripCodeFences(raw))

	// Discard leading prose before the first opening brace.
	if i := strings.IndexByte(s, '{'); i > 0 {
		s = s[i:]
	}

	inString := false
	escapeNext := false
	var open []byte // unclosed openers, most recent last

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escapeNext {
			escapeNext = false
			continue
		}
		if c == '\\' {
			escapeNext = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{', '[':
			open = append(open, c)
		case '}':
			if len(open) > 0 && open[len(open)-1] == '{' {
				open = open[:len(open)-1]
			}
		case ']':
			if len(open) > 0 && open[len(open)-1] == '[' {
				open = open[:len(open)-1]
			}
		}
	}

	if inString {
		s += `"`
	}
	s = trimTrailingComma(s)

	// Close unclosed structures innermost-first.
	for len(open) > 0 {
		top := open[len(open)-1]
		open = open[:len(open)-1]
		s = trimTrailingComma(s)
		if top == '{' {
			s += "}"
		} else {
			s += "]"
		}
	}

	return stripCommasBeforeClosers(s)
}

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	var result []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// trimTrailingComma removes a comma at the very end of the text,
// ignoring trailing whitespace.
func trimTrailingComma(s string) string {
	t := strings.TrimRight(s, " \t\r\n")
	if strings.HasSuffix(t, ",") {
		return t[:len(t)-1]
	}
	return s
}

// stripCommasBeforeClosers removes any comma immediately preceding a closing
// brace or bracket outside of string values. Cleanup for structures that
// were closed mid-scan with a dangling comma.
func stripCommasBeforeClosers(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escapeNext := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escapeNext {
			b.WriteByte(c)
			escapeNext = false
			continue
		}
		if c == '\\' {
			b.WriteByte(c)
			escapeNext = true
			continue
		}
		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}

		if !inString && c == ',' {
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\r' || s[j] == '\n') {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
		}

		b.WriteByte(c)
	}

	return b.String()
}
