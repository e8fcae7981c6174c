package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"

	"github.com/brentdalling/gcenv/internal/credentials"
)

// ErrNoExports is returned when a script exports nothing.
var ErrNoExports = errors.New("no export statements found")

// Parse reads a script and returns its exported variables in source order.
// Only `export NAME=value` statements count; other commands are skipped.
func Parse(r io.Reader, name string) ([]credentials.Var, error) {
	f, err := syntax.NewParser().Parse(r, name)
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	var vars []credentials.Var
	for _, stmt := range f.Stmts {
		decl, ok := stmt.Cmd.(*syntax.DeclClause)
		if !ok || decl.Variant == nil || decl.Variant.Value != "export" {
			continue
		}
		for _, as := range decl.Args {
			if as.Name == nil || as.Naked {
				continue
			}
			value := ""
			if as.Value != nil {
				value, err = expand.Literal(nil, as.Value)
				if err != nil {
					return nil, fmt.Errorf("expand %s: %w", as.Name.Value, err)
				}
			}
			vars = append(vars, credentials.Var{Name: as.Name.Value, Value: value})
		}
	}

	if len(vars) == 0 {
		return nil, ErrNoExports
	}
	return vars, nil
}

// ReadFile parses the script at path.
func ReadFile(path string) ([]credentials.Var, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	return Parse(f, path)
}

// ReadCredentials parses the script at path into a credential set.
func ReadCredentials(path string) (credentials.Set, error) {
	vars, err := ReadFile(path)
	if err != nil {
		return credentials.Set{}, err
	}

	m := make(map[string]string, len(vars))
	for _, v := range vars {
		m[v.Name] = v.Value
	}
	return credentials.FromVars(m), nil
}
