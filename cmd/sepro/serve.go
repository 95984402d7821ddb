package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sepro-lang/sepro/core"
	"github.com/sepro-lang/sepro/dsl"
	"github.com/sepro-lang/sepro/expr"
	"github.com/sepro-lang/sepro/observe"
	"github.com/sepro-lang/sepro/store"
)

func newServeCommand() *cobra.Command {
	var world string
	var addr string
	var cronExpr string
	var snapshotDB string

	cmd := &cobra.Command{
		Use:   "serve MODEL",
		Short: "Run a model forever, broadcasting probe records over a websocket feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveModel(args[0], world, addr, cronExpr, snapshotDB)
		},
	}

	cmd.Flags().StringVar(&world, "world", "main", "world to initialize before running")
	cmd.Flags().StringVar(&addr, "http", ":8080", "address to serve the websocket probe feed on")
	cmd.Flags().StringVar(&cronExpr, "snapshot-cron", "", "cron expression for periodic snapshotting; empty disables it")
	cmd.Flags().StringVar(&snapshotDB, "snapshot-db", "sepro-snapshots.db", "bbolt file scheduled snapshots are written to")

	return cmd
}

func serveModel(path, world, addr, cronExpr, snapshotDB string) error {
	model, err := dsl.Load(path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	engine := core.NewEngine(model, core.NewContainer())
	engine.SetScriptRunner(expr.NewInterpreter())
	if _, err := engine.Initialize(core.Intern(world)); err != nil {
		return fmt.Errorf("initialize world %q: %w", world, err)
	}

	hub := observe.NewWSHub()
	engine.SetLogger(hub)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cronExpr != "" {
		s, err := store.New(snapshotDB)
		if err != nil {
			return err
		}
		if err := s.Open(ctx); err != nil {
			return fmt.Errorf("open snapshot store: %w", err)
		}
		defer s.Close(ctx)

		sched, err := observe.NewScheduler(engine, s, "periodic", cronExpr)
		if err != nil {
			return fmt.Errorf("parse snapshot cron expression: %w", err)
		}
		go sched.Run(ctx)
		defer sched.Stop()
	}

	mux := http.NewServeMux()
	mux.Handle("/probe", hub)
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		server.Close()
	}()

	go runForever(ctx, engine)

	fmt.Printf("serving probe feed on %s/probe\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func runForever(ctx context.Context, engine *core.Engine) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			engine.Run(1)
			if engine.IsHalted() {
				return
			}
			time.Sleep(100 * time.Millisecond)
		}
	}
}
