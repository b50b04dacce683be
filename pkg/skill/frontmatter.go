package skill

import (
	"strings"

	"github.com/pkg/errors"
)

const frontmatterDelimiter = "---"

var (
	// ErrMissingFrontmatter indicates the manifest does not begin with the
	// frontmatter delimiter.
	ErrMissingFrontmatter = errors.New("missing frontmatter")
	// ErrMalformedFrontmatter indicates an opening delimiter with no
	// matching closing delimiter.
	ErrMalformedFrontmatter = errors.New("malformed frontmatter")
)

// ParseFrontmatter extracts the leading delimited frontmatter block from
// manifest text and parses it into a flat field/value mapping.
//
// The manifest schema is deliberately flat: each line is a "field: value"
// pair, values may contain colons, and a value wholly wrapped in a single
// pair of matching quotes has the quotes stripped. Blank lines and comment
// lines are skipped. Lines without a colon are ignored rather than rejected
// so that minor format drift does not fail validation outright. When a field
// name repeats, the last occurrence wins.
func ParseFrontmatter(content string) (map[string]string, error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != frontmatterDelimiter {
		return nil, ErrMissingFrontmatter
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, ErrMalformedFrontmatter
	}

	fields := make(map[string]string)
	for _, line := range lines[1:end] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		name, value, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}

		fields[strings.TrimSpace(name)] = unquote(strings.TrimSpace(value))
	}

	return fields, nil
}

// unquote strips a single pair of matching surrounding quotes. No escape
// processing: the manifest format has none.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first := value[0]
	if (first == '"' || first == '\'') && value[len(value)-1] == first {
		return value[1 : len(value)-1]
	}
	return value
}

// ExtractBody returns the manifest content after the frontmatter block. If
// the frontmatter is missing or unterminated the content is returned as-is.
func ExtractBody(content string) string {
	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return content
	}

	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelimiter {
			return strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n")
		}
	}

	return content
}
