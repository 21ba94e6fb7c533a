package main

import (
	"encoding/json"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the internal state of the service and its repository as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		components := map[string]any{
			svc.ComponentType(): svc.State(),
		}
		if src, ok := svc.Source().(interface {
			introspection.Introspectable
			introspection.Component
		}); ok {
			components[src.ComponentType()] = src.State()
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(components)
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
