package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dacostarepublic/folio/pkg/core"
)

var indexJSON bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "List every document by id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		index, err := svc.Index(cmd.Context())
		if err != nil {
			return err
		}

		docs := make([]core.Document, 0, len(index))
		for _, d := range index {
			docs = append(docs, d)
		}
		sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

		out := cmd.OutOrStdout()
		if indexJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(docs)
		}

		for _, d := range docs {
			fmt.Fprintf(out, "%s\t%s\t%s\n", d.ID, d.RelativePath, d.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().BoolVar(&indexJSON, "json", false, "Output in JSON format")
}
