// Package script renders, writes and reads back the generated environment
// script.
//
// Values are placed inside double quotes exactly as typed. A value holding a
// double quote, backtick, dollar sign or backslash changes the meaning of the
// script or breaks its syntax. This is a known limitation: nothing is escaped.
// Check reports a script the shell would refuse to parse.
package script

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/brentdalling/gcenv/internal/credentials"
)

const (
	// DefaultInterpreter is the shebang interpreter
	DefaultInterpreter = "/bin/bash"
	// DefaultPath is where the script is written unless overridden
	DefaultPath = "/tmp/genesyscloud_env.sh"
	// SuccessMessage is echoed by the script once sourced
	SuccessMessage = "Environment variables set successfully!"
)

// Options controls the parts of the template that vary by platform.
type Options struct {
	Interpreter string
}

// Render formats set into the fixed script template.
func Render(set credentials.Set, opts Options) string {
	interpreter := opts.Interpreter
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}

	var b strings.Builder
	fmt.Fprintf(&b, "#!%s\n\n", interpreter)
	for _, v := range set.Vars() {
		fmt.Fprintf(&b, "export %s=\"%s\"\n", v.Name, v.Value)
	}
	fmt.Fprintf(&b, "\necho \"%s\"\n", SuccessMessage)
	return b.String()
}

// Check parses content as a POSIX/bash script and returns the parse error,
// if any. It does not modify content.
func Check(content string) error {
	if _, err := syntax.NewParser().Parse(strings.NewReader(content), ""); err != nil {
		return fmt.Errorf("script syntax: %w", err)
	}
	return nil
}
