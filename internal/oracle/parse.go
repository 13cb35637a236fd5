package oracle

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedResponse marks oracle answers that could not be parsed as
// the expected structure. Callers skip the item and leave the pair
// unresolved for the next run.
var ErrMalformedResponse = errors.New("oracle response is not the expected structure")

var (
	fenceOpenRe  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	fenceCloseRe = regexp.MustCompile("\\s*```$")
)

// ExtractJSON pulls the first balanced brace-delimited object out of a
// free-text oracle answer. Models wrap their JSON in code fences or
// prose often enough that strict decoding is not an option.
func ExtractJSON(raw string) ([]byte, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = fenceOpenRe.ReplaceAllString(text, "")
		text = fenceCloseRe.ReplaceAllString(text, "")
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return []byte(text[start : i+1]), nil
			}
		}
	}

	return nil, fmt.Errorf("%w: unbalanced JSON object", ErrMalformedResponse)
}
