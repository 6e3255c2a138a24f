package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Choice is a single-letter answer to a prompt. The letter is what the
// user types; prompts render the default choice uppercased.
type Choice rune

const (
	ChoiceNo   Choice = 'n'
	ChoiceYes  Choice = 'y'
	ChoiceEdit Choice = 'e'
	ChoiceAll  Choice = 'a'
)

// Select asks prompt until the user answers with one of options. An
// empty answer picks def, anything unknown reprints the question.
// Input errors, including EOF, are returned as-is.
func Select(in *bufio.Reader, out io.Writer, prompt string, options []Choice, def Choice) (Choice, error) {
	for {
		fmt.Fprintf(out, "%s [%s]: ", prompt, renderOptions(options, def))
		line, err := readLine(in)
		if err != nil {
			return 0, err
		}
		line = strings.ToLower(line)
		if line == "" {
			return def, nil
		}
		for _, o := range options {
			if line == string(o) {
				return o, nil
			}
		}
		fmt.Fprintln(out, "Invalid option. Please try again")
	}
}

func renderOptions(options []Choice, def Choice) string {
	letters := make([]string, len(options))
	for i, o := range options {
		r := rune(o)
		if o == def {
			r = unicode.ToUpper(r)
		}
		letters[i] = string(r)
	}
	return strings.Join(letters, "/")
}

// readLine reads one trimmed line. A final line without a newline still
// counts; EOF is only reported when there is nothing left to read.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
