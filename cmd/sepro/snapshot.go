package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sepro-lang/sepro/core"
	"github.com/sepro-lang/sepro/dsl"
	"github.com/sepro-lang/sepro/store"
)

func newSnapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save or load a core.Snapshot through a bbolt-backed store.Store",
	}
	cmd.AddCommand(newSnapshotSaveCommand(), newSnapshotLoadCommand())
	return cmd
}

func newSnapshotSaveCommand() *cobra.Command {
	var world string
	var steps int

	cmd := &cobra.Command{
		Use:   "save DB NAME MODEL",
		Short: "Run MODEL and save its final state into DB under NAME",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, name, modelPath := args[0], args[1], args[2]

			model, err := dsl.Load(modelPath)
			if err != nil {
				return fmt.Errorf("load model: %w", err)
			}

			engine := core.NewEngine(model, core.NewContainer())
			if _, err := engine.Initialize(core.Intern(world)); err != nil {
				return fmt.Errorf("initialize world %q: %w", world, err)
			}
			engine.Run(steps)

			s, err := store.New(db)
			if err != nil {
				return err
			}
			ctx := context.Background()
			if err := s.Open(ctx); err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close(ctx)

			snap := engine.Snapshot()
			if err := s.Save(ctx, name, &snap); err != nil {
				return fmt.Errorf("save snapshot %q: %w", name, err)
			}

			fmt.Printf("saved snapshot %q to %s\n", name, db)
			return nil
		},
	}

	cmd.Flags().StringVar(&world, "world", "main", "world to initialize before running")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of steps to run before saving")

	return cmd
}

func newSnapshotLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load DB NAME",
		Short: "Load a snapshot from DB and print it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, name := args[0], args[1]

			s, err := store.New(db)
			if err != nil {
				return err
			}
			ctx := context.Background()
			if err := s.Open(ctx); err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close(ctx)

			snap, err := s.Load(ctx, name)
			if err != nil {
				return fmt.Errorf("load snapshot %q: %w", name, err)
			}

			fmt.Printf("snapshot %q: %d objects, step %d, halted=%v\n", name, len(snap.Objects), snap.StepCount, snap.IsHalted)
			return nil
		},
	}
}
