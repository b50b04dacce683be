package main

import (
	"fmt"
	"os"

	"github.com/agentskills/skillpack/pkg/presenter"
	"github.com/agentskills/skillpack/pkg/skill"
	"github.com/spf13/cobra"
)

type PackageConfig struct {
	Output string
}

func NewPackageConfig() *PackageConfig {
	return &PackageConfig{
		Output: "",
	}
}

var packageCmd = &cobra.Command{
	Use:   "package <path>",
	Short: "Package a valid skill into a .skill archive",
	Long: `Validate the skill directory at <path> and, on success, package it into a
<name>.skill archive. The archive contains the skill directory as its single
top-level entry with all contents at their original relative paths.

Packaging is all-or-nothing: an invalid skill produces no artifact.

Examples:
  skillpack package ./my-skill
  skillpack package ./my-skill --output ./dist`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getPackageConfigFromFlags(cmd)
		packageSkillCmd(args[0], config)
	},
}

func init() {
	defaults := NewPackageConfig()
	packageCmd.Flags().StringP("output", "o", defaults.Output, "Directory to write the archive to (default: current directory)")

	rootCmd.AddCommand(packageCmd)
}

func getPackageConfigFromFlags(cmd *cobra.Command) *PackageConfig {
	config := NewPackageConfig()
	if output, err := cmd.Flags().GetString("output"); err == nil {
		config.Output = output
	}
	return config
}

func packageSkillCmd(skillDir string, config *PackageConfig) {
	packager := skill.NewPackager()

	artifactPath, err := packager.Package(skillDir, config.Output)
	if err != nil {
		presenter.Error(err, "Failed to package skill")
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Packaged skill to %s", artifactPath))
}
