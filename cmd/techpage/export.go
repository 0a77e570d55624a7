package main

import (
	"github.com/3-lines-studio/techpage"
	"github.com/3-lines-studio/techpage/internal/usecase"
	"github.com/spf13/cobra"
)

func newExportCmd(output usecase.CLIOutput) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the page routes as static HTML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := techpage.New(nil)
			if err != nil {
				return err
			}

			output.PrintHeader("Techpage Export")
			files, err := app.Export(cmd.Context(), outDir)
			if err != nil {
				return err
			}

			written := 0
			for _, f := range files {
				if f.Status != techpage.FileUnchanged {
					written++
				}
			}

			output.PrintSuccess("Wrote %d pages", written)
			for _, f := range files {
				switch f.Status {
				case techpage.FileUpdated:
					output.PrintWarning("Overwrote %s", f.Path)
				case techpage.FileUnchanged:
					output.PrintStep("%s (unchanged)", f.Path)
				default:
					output.PrintFile(f.Path)
				}
			}

			output.PrintDone("Export complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	return cmd
}
