package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sepro",
		Short:         "Run and inspect Sepro rule-based simulation models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCommand(),
		newValidateCommand(),
		newDotCommand(),
		newDocgenCommand(),
		newServeCommand(),
		newSnapshotCommand(),
	)

	return root
}
