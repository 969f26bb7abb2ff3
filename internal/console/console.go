// Package console implements the line-oriented prompt/read helpers the menu
// flows are built on. Every reader re-prompts in place on bad input and only
// ever fails when the input stream itself is exhausted, so callers can treat
// a returned error as "session over" rather than "bad value".
package console

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"customer-tracker/internal/apperrors"
)

// whitespaceCutset is the character set trimmed from user input.
const whitespaceCutset = " \t\n\r\f\v"

// Console reads operator input line by line and writes prompts and
// diagnostics to Out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewReader(r), out: w}
}

// Printf writes formatted output to the console's writer.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line to the console's writer.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// readRawLine reads one line without trimming. io.EOF with a non-empty
// partial line still yields that line; the next call reports the EOF.
func (c *Console) readRawLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\n"), nil
		}
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// ReadInt prompts and reads lines until one parses as an integer. A
// malformed entry consumes exactly its own line and triggers a retry
// message.
func (c *Console) ReadInt(prompt string) (int, error) {
	if prompt != "" {
		fmt.Fprintln(c.out, prompt)
	}
	for {
		line, err := c.readRawLine()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.Trim(line, whitespaceCutset))
		if convErr != nil {
			fmt.Fprintln(c.out, "Error. Please enter a valid integer value.")
			continue
		}
		return n, nil
	}
}

// ReadIntInRange reads integers until one satisfies min <= v <= max.
// Bounds are inclusive.
func (c *Console) ReadIntInRange(prompt string, min, max int) (int, error) {
	first := prompt
	for {
		n, err := c.ReadInt(first)
		if err != nil {
			return 0, err
		}
		if n >= min && n <= max {
			return n, nil
		}
		fmt.Fprintln(c.out, "Please enter a number which corresponds to one of the options.")
		first = ""
	}
}

// ReadYesNo reads lines until one starts with a y or n, case-insensitive.
func (c *Console) ReadYesNo(prompt string) (bool, error) {
	if prompt != "" {
		fmt.Fprintln(c.out, prompt)
	}
	for {
		line, err := c.readRawLine()
		if err != nil {
			return false, err
		}
		answer := strings.Trim(line, whitespaceCutset)
		if answer != "" {
			switch answer[0] {
			case 'y', 'Y':
				return true, nil
			case 'n', 'N':
				return false, nil
			}
		}
		fmt.Fprintln(c.out, "Error. Please enter a valid answer. [y/n]")
	}
}

// ReadLine prompts and reads until a non-empty trimmed line is entered.
// Blank and whitespace-only lines are skipped, mirroring a whitespace-eating
// read on the input stream.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(c.out, prompt)
	}
	for {
		line, err := c.readRawLine()
		if err != nil {
			return "", err
		}
		trimmed, trimErr := TrimSpace(line)
		if trimErr != nil {
			continue
		}
		return trimmed, nil
	}
}

// ReadOptional reads one line for an optional field. An empty line means
// NULL; anything else is trimmed and stored. This is the bind-or-null
// convention used for every optional column on both tables.
func (c *Console) ReadOptional(prompt string) (sql.NullString, error) {
	if prompt != "" {
		fmt.Fprintln(c.out, prompt)
	}
	line, err := c.readRawLine()
	if err != nil {
		return sql.NullString{}, err
	}
	if line == "" {
		return sql.NullString{}, nil
	}
	trimmed, trimErr := TrimSpace(line)
	if trimErr != nil {
		// Trim failure leaves the value unchanged, as documented.
		log.Println("Error: Trimming of whitespace failed.")
		return sql.NullString{String: line, Valid: true}, nil
	}
	return sql.NullString{String: trimmed, Valid: true}, nil
}

// TrimSpace removes leading and trailing whitespace (space, tab, newline,
// carriage return, form feed, vertical tab). If the string is empty or
// whitespace only it is returned unchanged along with ErrEmptyInput.
func TrimSpace(s string) (string, error) {
	trimmed := strings.Trim(s, whitespaceCutset)
	if trimmed == "" {
		return s, apperrors.ErrEmptyInput
	}
	return trimmed, nil
}
