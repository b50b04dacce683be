package presenter

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithOptions(t *testing.T) {
	var output, errorOutput bytes.Buffer
	presenter := NewWithOptions(&output, &errorOutput, ColorNever)

	assert.Equal(t, &output, presenter.output)
	assert.Equal(t, &errorOutput, presenter.errorOutput)
	assert.Equal(t, ColorNever, presenter.colorMode)
	assert.False(t, presenter.quiet)
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name           string
		noColor        string
		skillpackColor string
		expected       ColorMode
	}{
		{"NO_COLOR set", "1", "", ColorNever},
		{"SKILLPACK_COLOR always", "", "always", ColorAlways},
		{"SKILLPACK_COLOR force", "", "force", ColorAlways},
		{"SKILLPACK_COLOR never", "", "never", ColorNever},
		{"SKILLPACK_COLOR off", "", "off", ColorNever},
		{"default", "", "", ColorAuto},
		{"invalid value", "", "invalid", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("NO_COLOR")
			os.Unsetenv("SKILLPACK_COLOR")

			if tt.noColor != "" {
				os.Setenv("NO_COLOR", tt.noColor)
			}
			if tt.skillpackColor != "" {
				os.Setenv("SKILLPACK_COLOR", tt.skillpackColor)
			}

			assert.Equal(t, tt.expected, detectColorMode())

			os.Unsetenv("NO_COLOR")
			os.Unsetenv("SKILLPACK_COLOR")
		})
	}
}

func TestError(t *testing.T) {
	var errorOutput bytes.Buffer
	presenter := NewWithOptions(nil, &errorOutput, ColorNever)

	presenter.Error(errors.New("boom"), "Validation failed")
	assert.Contains(t, errorOutput.String(), "[ERROR] Validation failed: boom")

	errorOutput.Reset()
	presenter.Error(errors.New("boom"), "")
	assert.Contains(t, errorOutput.String(), "[ERROR] boom")

	errorOutput.Reset()
	presenter.Error(nil, "ignored")
	assert.Empty(t, errorOutput.String())
}

func TestErrorShownInQuietMode(t *testing.T) {
	var errorOutput bytes.Buffer
	presenter := NewWithOptions(nil, &errorOutput, ColorNever)
	presenter.SetQuiet(true)

	presenter.Error(errors.New("boom"), "")
	assert.Contains(t, errorOutput.String(), "boom")
}

func TestSuccessWarningInfo(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Success("packaged")
	presenter.Warning("slow disk")
	presenter.Info("details")

	out := output.String()
	assert.Contains(t, out, "✓ packaged")
	assert.Contains(t, out, "⚠ slow disk")
	assert.Contains(t, out, "details")
}

func TestQuietModeSuppressesOutput(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)
	presenter.SetQuiet(true)
	assert.True(t, presenter.IsQuiet())

	presenter.Success("packaged")
	presenter.Warning("slow disk")
	presenter.Info("details")
	presenter.Section("Skills")
	presenter.Separator()

	assert.Empty(t, output.String())
}

func TestSection(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Section("Skills")
	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	assert.Equal(t, []string{"Skills", "------"}, lines)
}
