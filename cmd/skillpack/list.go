package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/agentskills/skillpack/pkg/presenter"
	"github.com/agentskills/skillpack/pkg/skill"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List discovered skills",
	Long: `List skills discovered in the given directory, or in the default skill
directories (./skills and ~/.skillpack/skills) when no directory is given.

Examples:
  skillpack list
  skillpack list ./skills`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		listSkillsCmd(args)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listSkillsCmd(args []string) {
	var opts []skill.Option
	if len(args) > 0 {
		opts = append(opts, skill.WithSkillDirs(args[0]))
	}

	discovery, err := skill.NewDiscovery(opts...)
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	allSkills, err := discovery.DiscoverSkills()
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	if len(allSkills) == 0 {
		presenter.Info("No skills found")
		return
	}

	names := make([]string, 0, len(allSkills))
	for name := range allSkills {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t---------\t-----------")

	for _, name := range names {
		s := allSkills[name]
		description := s.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Directory, description)
	}
	tw.Flush()
}
