package skill

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Packager turns a validated skill directory into a .skill archive.
type Packager struct {
	archiver Archiver
}

// PackagerOption is a function that configures a Packager
type PackagerOption func(*Packager)

// WithArchiver overrides the archiver used to write the artifact.
func WithArchiver(a Archiver) PackagerOption {
	return func(p *Packager) {
		p.archiver = a
	}
}

// NewPackager creates a new Packager, defaulting to the zip archiver.
func NewPackager(opts ...PackagerOption) *Packager {
	p := &Packager{archiver: ZipArchiver{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Package validates the skill at skillPath and, on success, writes
// "<basename>.skill" to outputDir (created if absent) or to the current
// working directory when outputDir is empty. Any failed step aborts
// packaging; no artifact is produced for an invalid skill. Returns the
// artifact path.
func (p *Packager) Package(skillPath, outputDir string) (string, error) {
	// Resolve first so paths like "." still yield the directory's real
	// basename for the artifact and archive layout.
	absPath, err := filepath.Abs(skillPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve skill path")
	}

	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return "", errors.Errorf("skill directory not found: %s", skillPath)
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to stat skill directory")
	}
	if !info.IsDir() {
		return "", errors.Errorf("not a directory: %s", skillPath)
	}

	// Cheap guard before the full validation pass.
	manifestPath := filepath.Join(absPath, ManifestFileName)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return "", errors.Errorf("no SKILL.md found in %s", skillPath)
	}

	if result := Validate(absPath); !result.Valid {
		return "", errors.Errorf("validation failed: %s", result.Message)
	}

	artifactName := filepath.Base(absPath) + ArtifactExtension
	artifactPath := artifactName
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return "", errors.Wrap(err, "failed to create output directory")
		}
		artifactPath = filepath.Join(outputDir, artifactName)
	}

	if err := p.archiver.Create(absPath, artifactPath); err != nil {
		return "", err
	}

	return artifactPath, nil
}
