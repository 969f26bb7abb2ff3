package console_test

import (
	"bytes"
	"database/sql"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-tracker/internal/apperrors"
	"customer-tracker/internal/console"
)

func newConsole(input string) (*console.Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return console.New(strings.NewReader(input), out), out
}

func TestReadIntFirstAttempt(t *testing.T) {
	c, _ := newConsole("42\n")
	n, err := c.ReadInt("enter a number")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestReadIntRetriesOnMalformedInput(t *testing.T) {
	c, out := newConsole("not a number\nstill not\n-7\n")
	n, err := c.ReadInt("")
	require.NoError(t, err)
	assert.Equal(t, -7, n)
	// one retry message per malformed line
	assert.Equal(t, 2, strings.Count(out.String(), "Error. Please enter a valid integer value."))
}

func TestReadIntEOF(t *testing.T) {
	c, _ := newConsole("")
	_, err := c.ReadInt("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadIntInRange(t *testing.T) {
	c, out := newConsole("9\n0\n3\n")
	n, err := c.ReadIntInRange("pick", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a number which corresponds to one of the options."))
}

func TestReadIntInRangeInclusiveBounds(t *testing.T) {
	c, _ := newConsole("1\n")
	n, err := c.ReadIntInRange("", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	c, _ = newConsole("5\n")
	n, err = c.ReadIntInRange("", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestReadYesNo(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"No\n", false},
		{"maybe\nY\n", true},
	}
	for _, tc := range cases {
		c, _ := newConsole(tc.input)
		got, err := c.ReadYesNo("proceed?")
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestReadLineSkipsBlankLines(t *testing.T) {
	c, _ := newConsole("\n   \n  JSMITH  \n")
	got, err := c.ReadLine("short name:")
	require.NoError(t, err)
	assert.Equal(t, "JSMITH", got)
}

func TestReadOptionalEmptyMeansNull(t *testing.T) {
	c, _ := newConsole("\n")
	got, err := c.ReadOptional("first name:")
	require.NoError(t, err)
	assert.False(t, got.Valid)
}

func TestReadOptionalTrimsText(t *testing.T) {
	c, _ := newConsole("\tJohn \n")
	got, err := c.ReadOptional("first name:")
	require.NoError(t, err)
	assert.Equal(t, sql.NullString{String: "John", Valid: true}, got)
}

func TestTrimSpace(t *testing.T) {
	got, err := console.TrimSpace(" \t\r\f\vhello world\n ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestTrimSpacePreservesInterior(t *testing.T) {
	got, err := console.TrimSpace("  a  b\tc  ")
	require.NoError(t, err)
	assert.Equal(t, "a  b\tc", got)
}

func TestTrimSpaceWhitespaceOnly(t *testing.T) {
	got, err := console.TrimSpace(" \t ")
	assert.ErrorIs(t, err, apperrors.ErrEmptyInput)
	// left unchanged on failure
	assert.Equal(t, " \t ", got)
}
