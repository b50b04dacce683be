package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength        = 64
	maxDescriptionLength = 1024
)

// namePattern is the hyphen-case character class skill names must match.
var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// allowedFields is the full set of field names permitted in SKILL.md
// frontmatter. Anything else is a validation failure.
var allowedFields = map[string]bool{
	"name":          true,
	"description":   true,
	"license":       true,
	"allowed-tools": true,
	"metadata":      true,
}

// Validate checks the skill directory's SKILL.md manifest against the skill
// schema. Rules are applied in a fixed order and the first violation is
// returned; the result message carries either the failure reason or a
// success confirmation. Validate re-reads the manifest on every call and
// never mutates the skill directory.
func Validate(skillDir string) ValidationResult {
	manifestPath := filepath.Join(skillDir, ManifestFileName)

	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return ValidationResult{Valid: false, Message: "SKILL.md not found"}
	}

	content, err := os.ReadFile(manifestPath)
	if err != nil {
		return ValidationResult{Valid: false, Message: fmt.Sprintf("Failed to read SKILL.md: %v", err)}
	}

	fields, err := ParseFrontmatter(string(content))
	if err != nil {
		switch err {
		case ErrMissingFrontmatter:
			return ValidationResult{Valid: false, Message: "No YAML frontmatter found"}
		default:
			return ValidationResult{Valid: false, Message: "Invalid frontmatter format"}
		}
	}

	var unexpected []string
	for field := range fields {
		if !allowedFields[field] {
			unexpected = append(unexpected, field)
		}
	}
	if len(unexpected) > 0 {
		sort.Strings(unexpected)
		allowed := make([]string, 0, len(allowedFields))
		for field := range allowedFields {
			allowed = append(allowed, field)
		}
		sort.Strings(allowed)
		return ValidationResult{
			Valid: false,
			Message: fmt.Sprintf("Unexpected frontmatter fields: %s (allowed fields: %s)",
				strings.Join(unexpected, ", "), strings.Join(allowed, ", ")),
		}
	}

	name, ok := fields["name"]
	if !ok {
		return ValidationResult{Valid: false, Message: "Missing 'name' in frontmatter"}
	}
	description, ok := fields["description"]
	if !ok {
		return ValidationResult{Valid: false, Message: "Missing 'description' in frontmatter"}
	}

	if msg := checkName(name); msg != "" {
		return ValidationResult{Valid: false, Message: msg}
	}

	if strings.ContainsAny(description, "<>") {
		return ValidationResult{Valid: false, Message: "Description must not contain '<' or '>' characters"}
	}

	if descLen := utf8.RuneCountInString(description); descLen > maxDescriptionLength {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("Description exceeds %d characters (got %d)", maxDescriptionLength, descLen),
		}
	}

	return ValidationResult{Valid: true, Message: "Skill is valid!"}
}

// checkName applies the skill naming rules and returns the failure message,
// or "" when the name is acceptable. The scaffolder shares these rules so a
// freshly created skill always validates.
func checkName(name string) string {
	if !namePattern.MatchString(name) {
		return fmt.Sprintf("Invalid name '%s': must contain only lowercase letters, digits, and hyphens", name)
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") || strings.Contains(name, "--") {
		return fmt.Sprintf("Invalid name '%s': must not start or end with a hyphen or contain consecutive hyphens", name)
	}
	if len(name) > maxNameLength {
		return fmt.Sprintf("Name exceeds %d characters (got %d)", maxNameLength, len(name))
	}
	return ""
}
