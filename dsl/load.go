// Package dsl loads a *core.Model from a file on disk: HCL surface
// syntax via hclparse+gohcl, or YAML/JSON directly into core.Model's
// own yaml/json-tagged fields. core itself never parses text; this is
// the one collaborator that does.
package dsl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	yaml2 "gopkg.in/yaml.v2"

	"github.com/sepro-lang/sepro/core"
)

// LoadError wraps an underlying parse/decode failure with the path
// that failed, for a CLI-friendly error message.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dsl: %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads path and returns the compiled Model, dispatching on file
// extension: .hcl uses the block surface syntax; .yaml/.yml/.json
// unmarshal directly into core.Model.
func Load(path string) (*core.Model, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	name := filepath.Base(path)

	switch filepath.Ext(path) {
	case ".hcl":
		m, err := loadHCL(path, bs)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		return m, nil
	case ".yaml", ".yml":
		var m core.Model
		if err := yaml2.Unmarshal(bs, &m); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		if m.Name == "" {
			m.Name = name
		}
		return &m, nil
	case ".json":
		var m core.Model
		if err := json.Unmarshal(bs, &m); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		if m.Name == "" {
			m.Name = name
		}
		return &m, nil
	default:
		return nil, &LoadError{Path: path, Err: fmt.Errorf("unrecognized model extension %q", filepath.Ext(path))}
	}
}

func loadHCL(path string, bs []byte) (*core.Model, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(bs, path)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	var hf hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &hf)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	return translate(filepath.Base(path), &hf), nil
}

func diagError(diags hcl.Diagnostics) error {
	return fmt.Errorf("%w", diags)
}
