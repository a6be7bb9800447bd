package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/zap/internal/template"
)

// templatesCmd lists the templates available to -T.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, _, err := loadConfig()
		if err != nil {
			return err
		}

		names, err := template.NewEngine(paths.Templates).List()
		if err != nil {
			return err
		}

		if len(names) == 0 {
			PrintEmptyState("no templates found in " + paths.Templates)
			return nil
		}
		PrintList(names, 0)
		return nil
	},
}
