// Package skill manages the lifecycle of agent skills: directories containing
// a SKILL.md manifest with YAML frontmatter plus optional scripts, references,
// and assets. It scaffolds new skills, validates manifests against the skill
// schema, and packages valid skills into distributable .skill archives.
package skill

// ManifestFileName is the manifest every skill directory must contain.
const ManifestFileName = "SKILL.md"

// ArtifactExtension is the file extension of packaged skill archives.
const ArtifactExtension = ".skill"

// Skill represents a skill directory on disk
type Skill struct {
	Name        string // Unique name from frontmatter
	Description string // Brief description for model decision-making
	Directory   string // Full path to the skill directory
	Content     string // Full content of SKILL.md (body, not frontmatter)
}

// Metadata represents the YAML frontmatter in SKILL.md files
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	License     string `yaml:"license,omitempty"`
}

// ValidationResult is the outcome of validating a skill manifest.
// Message carries either the success confirmation or the first-detected
// violation; there is no structured error code.
type ValidationResult struct {
	Valid   bool
	Message string
}
