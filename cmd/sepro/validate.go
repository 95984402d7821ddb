package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sepro-lang/sepro/dsl"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate MODEL",
		Short: "Load a model and report any static findings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := dsl.Load(args[0])
			if err != nil {
				return fmt.Errorf("load model: %w", err)
			}

			findings := dsl.Validate(model)
			if len(findings) == 0 {
				fmt.Println("no findings")
				return nil
			}

			for _, f := range findings {
				fmt.Println(f)
			}
			return fmt.Errorf("%d finding(s)", len(findings))
		},
	}
}
