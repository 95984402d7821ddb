package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sepro-lang/sepro/core"
	"github.com/sepro-lang/sepro/dsl"
	"github.com/sepro-lang/sepro/expr"
	"github.com/sepro-lang/sepro/observe"
	"github.com/sepro-lang/sepro/viz"
)

func newRunCommand() *cobra.Command {
	var world string
	var seed int64
	var dotOut string
	var dump bool

	cmd := &cobra.Command{
		Use:   "run MODEL STEPS",
		Short: "Load a model, run it for STEPS steps, and dump its final state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid STEPS %q: %w", args[1], err)
			}
			return runModel(args[0], world, seed, steps, dotOut, dump)
		},
	}

	cmd.Flags().StringVar(&world, "world", "main", "world to initialize before running")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "deterministic shuffle seed")
	cmd.Flags().StringVar(&dotOut, "dot", "", "also write a DOT snapshot of the final state to this path")
	cmd.Flags().BoolVar(&dump, "dump", false, "write a full object/tag/counter/binding dump to stdout after the run")

	return cmd
}

func runModel(path, world string, seed int64, steps int, dotOut string, dump bool) error {
	model, err := dsl.Load(path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	engine := core.NewEngine(model, core.NewContainer())
	engine.SetSeed(seed)
	engine.SetLogger(observe.NewStdLogger())
	engine.SetScriptRunner(expr.NewInterpreter())

	if _, err := engine.Initialize(core.Intern(world)); err != nil {
		return fmt.Errorf("initialize world %q: %w", world, err)
	}

	ran := engine.Run(steps)
	fmt.Printf("ran %d of %d requested steps (halted=%v)\n", ran, steps, engine.IsHalted())
	fmt.Printf("final object count: %d\n", engine.Container().Len())

	if dump {
		engine.DebugDump()
	}

	if dotOut != "" {
		f, err := os.Create(dotOut)
		if err != nil {
			return fmt.Errorf("create dot output: %w", err)
		}
		defer f.Close()
		snap := engine.Snapshot()
		if err := viz.Dot(model, &snap, f); err != nil {
			return fmt.Errorf("write dot output: %w", err)
		}
	}

	return nil
}
