package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Show or set the dashboard theme",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if len(args) == 0 {
		theme := app.Config.Theme
		if app.Cache != nil {
			if cached, err := app.Cache.LoadTheme(); err == nil && cached != "" {
				theme = cached
			}
		}
		if theme == "" {
			theme = "dark"
		}
		fmt.Println(theme)
		return nil
	}

	theme := args[0]
	if theme != "dark" && theme != "light" {
		return fmt.Errorf("unknown theme: %s (use dark or light)", theme)
	}

	app.Config.Theme = theme
	if err := app.Config.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	if app.Cache != nil {
		_ = app.Cache.SaveTheme(theme)
	}
	fmt.Printf("Theme set to %s\n", theme)
	return nil
}
