package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/3-lines-studio/techpage"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the technology list in page order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeList(cmd.OutOrStdout(), format, techpage.DefaultCatalog().Technologies())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	return cmd
}

func writeList(w io.Writer, format string, techs []techpage.Technology) error {
	switch format {
	case "text":
		for _, tech := range techs {
			if tech.HasLink() {
				fmt.Fprintf(w, "%s (%s)\n", tech.Label(), tech.Link)
			} else {
				fmt.Fprintln(w, tech.Label())
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Technologies []techpage.Technology `json:"technologies"`
		}{techs})
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}
