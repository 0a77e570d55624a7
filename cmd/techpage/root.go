package main

import (
	"github.com/3-lines-studio/techpage/internal/usecase"
	"github.com/spf13/cobra"
)

func newRootCmd(output usecase.CLIOutput) *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:   "techpage",
		Short: "Serve or export the Foodgram technologies page",
		Long: `techpage renders the static page listing the technologies used by the
Foodgram backend. It can serve the page over HTTP, export it as static HTML,
or print the technology list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				output.DisableColors()
			}
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newServeCmd(output),
		newExportCmd(output),
		newListCmd(),
	)
	return root
}
