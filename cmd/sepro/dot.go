package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sepro-lang/sepro/core"
	"github.com/sepro-lang/sepro/dsl"
	"github.com/sepro-lang/sepro/expr"
	"github.com/sepro-lang/sepro/viz"
)

func newDotCommand() *cobra.Command {
	var world string
	var steps int

	cmd := &cobra.Command{
		Use:   "dot MODEL",
		Short: "Run a model briefly and write a DOT digraph of its final state to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := dsl.Load(args[0])
			if err != nil {
				return fmt.Errorf("load model: %w", err)
			}

			engine := core.NewEngine(model, core.NewContainer())
			engine.SetScriptRunner(expr.NewInterpreter())
			if _, err := engine.Initialize(core.Intern(world)); err != nil {
				return fmt.Errorf("initialize world %q: %w", world, err)
			}
			engine.Run(steps)

			snap := engine.Snapshot()
			return viz.Dot(model, &snap, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&world, "world", "main", "world to initialize before running")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of steps to run before rendering")

	return cmd
}
