package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInitConfigFromFlags(t *testing.T) {
	cmd := &cobra.Command{}
	defaults := NewInitConfig()
	cmd.Flags().StringP("dest", "d", defaults.Dest, "")

	config := getInitConfigFromFlags(cmd)
	assert.Equal(t, ".", config.Dest)

	require.NoError(t, cmd.Flags().Set("dest", "./skills"))
	config = getInitConfigFromFlags(cmd)
	assert.Equal(t, "./skills", config.Dest)
}

func TestGetValidateConfigFromFlags(t *testing.T) {
	cmd := &cobra.Command{}
	defaults := NewValidateConfig()
	cmd.Flags().BoolP("watch", "w", defaults.Watch, "")

	config := getValidateConfigFromFlags(cmd)
	assert.False(t, config.Watch)

	require.NoError(t, cmd.Flags().Set("watch", "true"))
	config = getValidateConfigFromFlags(cmd)
	assert.True(t, config.Watch)
}

func TestGetPackageConfigFromFlags(t *testing.T) {
	cmd := &cobra.Command{}
	defaults := NewPackageConfig()
	cmd.Flags().StringP("output", "o", defaults.Output, "")

	config := getPackageConfigFromFlags(cmd)
	assert.Equal(t, "", config.Output)

	require.NoError(t, cmd.Flags().Set("output", "./dist"))
	config = getPackageConfigFromFlags(cmd)
	assert.Equal(t, "./dist", config.Output)
}
