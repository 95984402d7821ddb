package main

import (
	"os"
	"path/filepath"
	"testing"
)

const testModelHCL = `
concept "cell" {
  tags = ["alive"]
}

world "main" {
  root = "cell"
}
`

func writeModelFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "model.hcl")
	if err := os.WriteFile(path, []byte(testModelHCL), 0o644); err != nil {
		t.Fatalf("unexpected error writing model: %v", err)
	}
	return path
}

func TestRunModelRunsToCompletionAndWritesDot(t *testing.T) {
	modelPath := writeModelFile(t)
	dotPath := filepath.Join(t.TempDir(), "out.dot")

	if err := runModel(modelPath, "main", 1, 3, dotPath, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bs, err := os.ReadFile(dotPath)
	if err != nil {
		t.Fatalf("expected a dot file to be written: %v", err)
	}
	if len(bs) == 0 {
		t.Fatalf("expected non-empty dot output")
	}
}

func TestRunModelFailsOnUnknownWorld(t *testing.T) {
	modelPath := writeModelFile(t)

	if err := runModel(modelPath, "nonexistent", 1, 1, "", false); err == nil {
		t.Fatalf("expected an error initializing an unknown world")
	}
}
