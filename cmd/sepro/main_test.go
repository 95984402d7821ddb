package main

import "testing"

func TestRootCommandRegistersEverySubcommand(t *testing.T) {
	root := newRootCommand()

	want := []string{"run", "validate", "dot", "docgen", "serve", "snapshot"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected a %q subcommand to be registered, got err=%v cmd=%v", name, err, cmd)
		}
	}
}

func TestSnapshotCommandRegistersSaveAndLoad(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{"save", "load"} {
		cmd, _, err := root.Find([]string{"snapshot", name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected snapshot %q subcommand to be registered, got err=%v", name, err)
		}
	}
}
