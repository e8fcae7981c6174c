// Package prompt collects the credential set from an interactive console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/brentdalling/gcenv/internal/credentials"
)

const (
	ClientIDLabel     = "Enter your Genesys Cloud OAuth client ID: "
	ClientSecretLabel = "Enter your Genesys Cloud OAuth client secret: "
	RegionLabel       = "Enter your Genesys Cloud region (e.g. us-east-1): "
)

// ErrEndOfInput is returned when the input closes before a value was typed.
var ErrEndOfInput = errors.New("end of input")

// Collector reads the three credential values in order.
type Collector struct {
	In  io.Reader
	Out io.Writer
	// ReadSecret reads the client secret without echoing it.
	// When nil the secret is read as a plain line from In.
	ReadSecret func() (string, error)

	reader *bufio.Reader
}

// New returns a Collector for the given input file. If in is a terminal the
// secret is read with echo disabled.
func New(in *os.File, out io.Writer) *Collector {
	c := &Collector{In: in, Out: out}
	if IsTerminal(in) {
		c.ReadSecret = func() (string, error) {
			defer fmt.Fprintln(out)
			b, err := term.ReadPassword(int(in.Fd()))
			if err != nil {
				return "", fmt.Errorf("read password: %w", err)
			}
			return string(b), nil
		}
	}
	return c
}

// IsTerminal reports whether f refers to a terminal device.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Collect prompts for client ID, client secret and region, in that order.
// Surrounding whitespace is trimmed from each value; nothing else is checked.
func (c *Collector) Collect() (credentials.Set, error) {
	var set credentials.Set
	var err error

	if set.ClientID, err = c.readLine(ClientIDLabel); err != nil {
		return credentials.Set{}, err
	}

	if c.ReadSecret != nil {
		fmt.Fprint(c.Out, ClientSecretLabel)
		secret, err := c.ReadSecret()
		if err != nil {
			return credentials.Set{}, err
		}
		set.ClientSecret = strings.TrimSpace(secret)
	} else if set.ClientSecret, err = c.readLine(ClientSecretLabel); err != nil {
		return credentials.Set{}, err
	}

	if set.Region, err = c.readLine(RegionLabel); err != nil {
		return credentials.Set{}, err
	}

	slog.Debug("collected credentials",
		"client_id_len", len(set.ClientID),
		"client_secret_len", len(set.ClientSecret),
		"region", set.Region)
	return set, nil
}

// readLine prints label and reads one newline-terminated line. A final line
// without a newline is accepted; an empty read at end of input is not.
func (c *Collector) readLine(label string) (string, error) {
	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}

	fmt.Fprint(c.Out, label)
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read %s: %w", fieldName(label), err)
		}
		if line == "" {
			return "", fmt.Errorf("read %s: %w", fieldName(label), ErrEndOfInput)
		}
	}
	return strings.TrimSpace(line), nil
}

func fieldName(label string) string {
	switch label {
	case ClientIDLabel:
		return "client ID"
	case ClientSecretLabel:
		return "client secret"
	case RegionLabel:
		return "region"
	}
	return "input"
}
