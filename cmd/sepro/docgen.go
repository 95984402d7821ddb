package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sepro-lang/sepro/dsl"
	"github.com/sepro-lang/sepro/docgen"
)

func newDocgenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "docgen MODEL",
		Short: "Write an HTML documentation report for a model to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := dsl.Load(args[0])
			if err != nil {
				return fmt.Errorf("load model: %w", err)
			}
			return docgen.Render(model, nil, os.Stdout)
		},
	}
}
