package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentskills/skillpack/pkg/presenter"
	"github.com/agentskills/skillpack/pkg/skill"
	"github.com/spf13/cobra"
)

type InitConfig struct {
	Dest string
}

func NewInitConfig() *InitConfig {
	return &InitConfig{
		Dest: ".",
	}
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new skill directory",
	Long: `Create a new skill directory seeded with a SKILL.md manifest and
placeholder scripts, references, and assets.

The skill name must be hyphen-case: lowercase letters, digits, and single
hyphens, at most 64 characters.

Examples:
  skillpack init my-skill
  skillpack init my-skill --dest ./skills`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getInitConfigFromFlags(cmd)
		initSkillCmd(args[0], config)
	},
}

func init() {
	defaults := NewInitConfig()
	initCmd.Flags().StringP("dest", "d", defaults.Dest, "Directory to create the skill in")

	rootCmd.AddCommand(initCmd)
}

func getInitConfigFromFlags(cmd *cobra.Command) *InitConfig {
	config := NewInitConfig()
	if dest, err := cmd.Flags().GetString("dest"); err == nil {
		config.Dest = dest
	}
	return config
}

func initSkillCmd(name string, config *InitConfig) {
	skillDir, err := skill.Scaffold(name, config.Dest)
	if err != nil {
		presenter.Error(err, "Failed to create skill")
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Created skill '%s' at %s", name, skillDir))
	presenter.Info(fmt.Sprintf("Edit %s to describe the skill, then run 'skillpack validate %s'",
		filepath.Join(skillDir, skill.ManifestFileName), skillDir))
}
