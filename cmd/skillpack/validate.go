package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/agentskills/skillpack/pkg/logger"
	"github.com/agentskills/skillpack/pkg/presenter"
	"github.com/agentskills/skillpack/pkg/skill"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces bursts of file events into one validation run.
const watchDebounce = 500 * time.Millisecond

type ValidateConfig struct {
	Watch bool
}

func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{
		Watch: false,
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a skill's SKILL.md manifest",
	Long: `Validate the SKILL.md manifest of the skill directory at <path> against
the skill schema: allowed frontmatter fields, required name and description,
hyphen-case name rules, and description length limits.

With --watch, validation re-runs whenever the skill directory changes, until
interrupted.

Examples:
  skillpack validate ./my-skill
  skillpack validate ./my-skill --watch`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getValidateConfigFromFlags(cmd)
		validateSkillCmd(cmd.Context(), args[0], config)
	},
}

func init() {
	defaults := NewValidateConfig()
	validateCmd.Flags().BoolP("watch", "w", defaults.Watch, "Re-validate whenever the skill directory changes")

	rootCmd.AddCommand(validateCmd)
}

func getValidateConfigFromFlags(cmd *cobra.Command) *ValidateConfig {
	config := NewValidateConfig()
	if watch, err := cmd.Flags().GetBool("watch"); err == nil {
		config.Watch = watch
	}
	return config
}

func validateSkillCmd(ctx context.Context, skillDir string, config *ValidateConfig) {
	if config.Watch {
		if err := watchAndValidate(ctx, skillDir); err != nil {
			presenter.Error(err, "Watch failed")
			os.Exit(1)
		}
		return
	}

	result := skill.Validate(skillDir)
	reportResult(result)
	if !result.Valid {
		os.Exit(1)
	}
}

func reportResult(result skill.ValidationResult) {
	if result.Valid {
		presenter.Success(result.Message)
	} else {
		presenter.Error(errors.New(result.Message), "Validation failed")
	}
}

// watchAndValidate validates the skill, then re-validates on every change to
// the skill directory until the process is interrupted. Events are debounced
// so editor write bursts produce a single run.
func watchAndValidate(ctx context.Context, skillDir string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	err = filepath.Walk(skillDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to watch skill directory")
	}

	presenter.Info(fmt.Sprintf("Watching %s (interrupt to stop)", skillDir))
	reportResult(skill.Validate(skillDir))

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New subdirectories need their own watch.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						logger.G(ctx).WithError(err).WithField("path", event.Name).Debug("Failed to watch new directory")
					}
				}
			}
			debounce.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.G(ctx).WithError(err).Warn("File watcher error")
		case <-debounce.C:
			presenter.Separator()
			reportResult(skill.Validate(skillDir))
		}
	}
}
