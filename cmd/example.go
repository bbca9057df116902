package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/spangrid/internal/sheet"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print the built-in example sheet as YAML",
	Long: `Print the built-in example sheet. Redirect it to a file to start a new sheet:

  spangrid example > plan.yaml
  spangrid plan.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeExample(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}

func writeExample(out io.Writer) error {
	data, err := sheet.Example().Marshal()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
