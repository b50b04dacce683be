package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter(t *testing.T) {
	content := `---
name: my-skill
description: Does X
license: MIT
---

# My Skill
`
	fields, err := ParseFrontmatter(content)
	require.NoError(t, err)
	assert.Equal(t, "my-skill", fields["name"])
	assert.Equal(t, "Does X", fields["description"])
	assert.Equal(t, "MIT", fields["license"])
	assert.Len(t, fields, 3)
}

func TestParseFrontmatterMissingDelimiter(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"plain markdown", "# My Skill\n\nNo frontmatter here.\n"},
		{"empty content", ""},
		{"delimiter not on first line", "\n---\nname: my-skill\n---\n"},
		{"delimiter with trailing text", "--- yaml\nname: my-skill\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFrontmatter(tt.content)
			assert.ErrorIs(t, err, ErrMissingFrontmatter)
		})
	}
}

func TestParseFrontmatterUnterminated(t *testing.T) {
	_, err := ParseFrontmatter("---\nname: my-skill\ndescription: Does X\n")
	assert.ErrorIs(t, err, ErrMalformedFrontmatter)

	_, err = ParseFrontmatter("---")
	assert.ErrorIs(t, err, ErrMalformedFrontmatter)
}

func TestParseFrontmatterValuesWithColons(t *testing.T) {
	fields, err := ParseFrontmatter("---\ndescription: Use this when: always\n---\n")
	require.NoError(t, err)
	assert.Equal(t, "Use this when: always", fields["description"])
}

func TestParseFrontmatterQuoteStripping(t *testing.T) {
	content := `---
name: my-skill
description: "Does X"
license: 'MIT'
allowed-tools: "mismatched'
---
`
	fields, err := ParseFrontmatter(content)
	require.NoError(t, err)
	assert.Equal(t, "Does X", fields["description"])
	assert.Equal(t, "MIT", fields["license"])
	// Mismatched quotes are kept as-is
	assert.Equal(t, `"mismatched'`, fields["allowed-tools"])
}

func TestParseFrontmatterSkipsBlankAndCommentLines(t *testing.T) {
	content := `---
# metadata for the skill

name: my-skill

description: Does X
---
`
	fields, err := ParseFrontmatter(content)
	require.NoError(t, err)
	assert.Len(t, fields, 2)
	assert.Equal(t, "my-skill", fields["name"])
}

func TestParseFrontmatterIgnoresLinesWithoutColon(t *testing.T) {
	content := `---
name: my-skill
this line has no colon
description: Does X
---
`
	fields, err := ParseFrontmatter(content)
	require.NoError(t, err)
	assert.Len(t, fields, 2)
}

func TestParseFrontmatterDuplicateFieldLastWins(t *testing.T) {
	content := `---
name: first-name
name: second-name
description: Does X
---
`
	fields, err := ParseFrontmatter(content)
	require.NoError(t, err)
	assert.Equal(t, "second-name", fields["name"])
}

func TestParseFrontmatterCRLF(t *testing.T) {
	fields, err := ParseFrontmatter("---\r\nname: my-skill\r\ndescription: Does X\r\n---\r\n")
	require.NoError(t, err)
	assert.Equal(t, "my-skill", fields["name"])
	assert.Equal(t, "Does X", fields["description"])
}

func TestExtractBody(t *testing.T) {
	content := `---
name: my-skill
description: Does X
---

# My Skill

Instructions here.
`
	body := ExtractBody(content)
	assert.Equal(t, "# My Skill\n\nInstructions here.\n", body)

	// Content without frontmatter is returned untouched
	assert.Equal(t, "# Plain\n", ExtractBody("# Plain\n"))

	// Unterminated frontmatter is returned untouched
	unterminated := "---\nname: my-skill\n"
	assert.Equal(t, unterminated, ExtractBody(unterminated))
}
