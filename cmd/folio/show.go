package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacostarepublic/folio/pkg/adapters/fs"
)

var (
	showJSON bool
	showBody bool
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the source of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		doc, err := svc.DocumentWithSource(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		text := doc.Source
		if showBody {
			_, body, err := fs.SplitHeader([]byte(doc.Source))
			if err != nil {
				return fmt.Errorf("%s: %w", doc.RelativePath, err)
			}
			text = string(body)
			doc.Source = text
		}

		out := cmd.OutOrStdout()
		if showJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(doc)
		}

		_, err = fmt.Fprint(out, text)
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output the document as JSON")
	showCmd.Flags().BoolVar(&showBody, "body", false, "Print the body without the header")
}
