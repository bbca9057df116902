package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/zjrosen/spangrid/internal/config"
	"github.com/zjrosen/spangrid/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in theme presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		listThemes(cmd.OutOrStdout(), cfg.Theme.Preset)
		return nil
	},
}

var themesUseCmd = &cobra.Command{
	Use:   "use <preset>",
	Short: "Set the theme preset in the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return cfgErr
		}
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if err := useTheme(path, args[0], cfg.Theme.Colors); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s in %s\n", args[0], path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesUseCmd)
}

func listThemes(out io.Writer, current string) {
	if current == "" {
		current = "default"
	}
	names := make([]string, 0, len(styles.Presets))
	for name := range styles.Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-18s %s\n", marker, name, styles.Presets[name].Description)
	}
}

func useTheme(path, preset string, colors map[string]string) error {
	if path == "" {
		return fmt.Errorf("no config file to write")
	}
	if _, ok := styles.Presets[preset]; !ok {
		return fmt.Errorf("unknown theme preset: %s", preset)
	}
	return config.SaveTheme(path, config.ThemeConfig{Preset: preset, Colors: colors})
}
