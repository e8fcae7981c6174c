package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brentdalling/gcenv/internal/credentials"
)

func newCollector(input string) (*Collector, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Collector{In: strings.NewReader(input), Out: out}, out
}

func TestCollect_Basic(t *testing.T) {
	c, out := newCollector("abc\nxyz\nus-east-1\n")

	set, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, credentials.Set{ClientID: "abc", ClientSecret: "xyz", Region: "us-east-1"}, set)

	// Prompts appear in fixed order
	assert.Equal(t, ClientIDLabel+ClientSecretLabel+RegionLabel, out.String())
}

func TestCollect_TrimsWhitespace(t *testing.T) {
	c, _ := newCollector("  abc\t\n xyz \n  us-east-1 \r\n")

	set, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, "abc", set.ClientID)
	assert.Equal(t, "xyz", set.ClientSecret)
	assert.Equal(t, "us-east-1", set.Region)
}

func TestCollect_EmptyValuesAccepted(t *testing.T) {
	c, _ := newCollector("\n\n\n")

	set, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, credentials.Set{}, set)
}

func TestCollect_LastLineWithoutNewline(t *testing.T) {
	c, _ := newCollector("abc\nxyz\neu-west-1")

	set, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", set.Region)
}

func TestCollect_EndOfInput(t *testing.T) {
	c, _ := newCollector("abc\n")

	_, err := c.Collect()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEndOfInput))
	assert.Contains(t, err.Error(), "client secret")
}

func TestCollect_NoInput(t *testing.T) {
	c, _ := newCollector("")

	_, err := c.Collect()
	assert.ErrorIs(t, err, ErrEndOfInput)
}

func TestCollect_SecretReader(t *testing.T) {
	c, out := newCollector("abc\nus-east-1\n")
	c.ReadSecret = func() (string, error) { return "  hidden  ", nil }

	set, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, credentials.Set{ClientID: "abc", ClientSecret: "hidden", Region: "us-east-1"}, set)
	assert.Contains(t, out.String(), ClientSecretLabel)
}

func TestCollect_SecretReaderError(t *testing.T) {
	c, _ := newCollector("abc\nus-east-1\n")
	c.ReadSecret = func() (string, error) { return "", errors.New("tty gone") }

	_, err := c.Collect()
	assert.EqualError(t, err, "tty gone")
}

func TestIsTerminal_Nil(t *testing.T) {
	assert.False(t, IsTerminal(nil))
}
