package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const manifestBodyTemplate = `# %s

## Overview

Describe what this skill does and when the model should use it.

## Instructions

1. Step-by-step instructions for the model.
2. Reference bundled resources with relative paths, e.g. scripts/example.sh.

## Resources

- scripts/ - executable helpers the model can run
- references/ - documentation loaded on demand
- assets/ - templates and other files used in output
`

const exampleScript = `#!/bin/bash
# Example helper script. Replace with the skill's real tooling.
echo "Hello from %s"
`

const exampleReference = `# Reference

Put documentation here that the model should load on demand rather than
carry in the skill instructions.
`

// Scaffold creates a new skill directory named name under destDir, seeded
// with a SKILL.md manifest that passes validation plus placeholder scripts,
// references, and assets. It refuses to overwrite an existing directory.
// Returns the created skill directory path.
func Scaffold(name, destDir string) (string, error) {
	if msg := checkName(name); msg != "" {
		return "", errors.New(msg)
	}

	skillDir := filepath.Join(destDir, name)
	if _, err := os.Stat(skillDir); err == nil {
		return "", errors.Errorf("directory already exists: %s", skillDir)
	}

	for _, dir := range []string{"scripts", "references", "assets"} {
		if err := os.MkdirAll(filepath.Join(skillDir, dir), 0o755); err != nil {
			return "", errors.Wrap(err, "failed to create skill directory")
		}
	}

	manifest, err := renderManifest(name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(skillDir, ManifestFileName), []byte(manifest), 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write SKILL.md")
	}

	script := fmt.Sprintf(exampleScript, name)
	if err := os.WriteFile(filepath.Join(skillDir, "scripts", "example.sh"), []byte(script), 0o755); err != nil {
		return "", errors.Wrap(err, "failed to write example script")
	}

	if err := os.WriteFile(filepath.Join(skillDir, "references", "reference.md"), []byte(exampleReference), 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write example reference")
	}

	return skillDir, nil
}

// renderManifest produces the initial SKILL.md content: YAML frontmatter
// followed by a placeholder body.
func renderManifest(name string) (string, error) {
	// Kept short so the emitted YAML stays on one line; the manifest schema
	// is flat and line-oriented.
	meta := Metadata{
		Name:        name,
		Description: fmt.Sprintf("Placeholder description for %s", name),
	}

	frontmatter, err := yaml.Marshal(meta)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal frontmatter")
	}

	body := fmt.Sprintf(manifestBodyTemplate, titleCase(name))

	return fmt.Sprintf("---\n%s---\n\n%s", frontmatter, body), nil
}

// titleCase turns a hyphen-case skill name into a document title.
func titleCase(name string) string {
	words := strings.Split(name, "-")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
