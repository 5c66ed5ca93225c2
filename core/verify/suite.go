// Package verify runs expected-vs-actual suites against the parser.
//
// A suite is a YAML document listing input lines and the job each one
// should parse to. Mismatches are collected and reported; the process
// is never aborted mid-suite.
package verify

import (
	_ "embed"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/suite.yaml
var defaultSuiteData []byte

// Suite is a named collection of parser conformance cases.
type Suite struct {
	Name  string `json:"name" validate:"required"`
	Cases []Case `json:"cases" validate:"required,unique=Name"`
}

// Case pairs one input line with the job it must parse to. An absent
// commands list means the job must have no commands; an absent
// redirect means the job must have no redirect target.
type Case struct {
	Name     string     `json:"name" validate:"required"`
	Input    string     `json:"input"`
	Commands [][]string `json:"commands"`
	Redirect string     `json:"redirect"`
}

// Validate the suite for basic semantic errors.
func (s *Suite) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(s)
}

// DefaultSuite returns the embedded conformance suite.
func DefaultSuite() *Suite {
	var out Suite
	// Will panic() on load failure because it should never happen at
	// runtime.
	if err := yaml.UnmarshalStrict(defaultSuiteData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Load reads and validates a suite from the filesystem. Unknown fields
// in the document are rejected.
func Load(fs afero.Fs, path string) (*Suite, error) {
	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	var out Suite
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, err
	}
	if out.Name == "" {
		out.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
