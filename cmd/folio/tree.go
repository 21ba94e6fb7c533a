package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacostarepublic/folio/pkg/core"
)

var treeJSON bool

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the content tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		tree, err := loadTree(cmd, svc)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if treeJSON {
			data, err := core.MarshalTree(tree)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := json.Indent(&buf, data, "", "  "); err != nil {
				return err
			}
			buf.WriteByte('\n')
			_, err = buf.WriteTo(out)
			return err
		}

		printNode(out, tree, 0)
		return nil
	},
}

func printNode(w io.Writer, n core.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *core.Branch:
		fmt.Fprintf(w, "%s%s/\n", indent, v.Name)
		for _, c := range v.Children {
			printNode(w, c, depth+1)
		}
	case *core.Leaf:
		fmt.Fprintf(w, "%s%s [%s]\n", indent, v.Document.Title, v.Document.ID)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().BoolVar(&treeJSON, "json", false, "Output the snapshot JSON")
}
