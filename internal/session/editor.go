package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Edit is one instruction from the tag editor: set Tag to Value, or
// clear it when HasValue is false.
type Edit struct {
	Tag      string
	Value    string
	HasValue bool
}

var editableTags = []string{
	"ARTIST", "ALBUM", "ALBUM_ARTIST", "GENRE", "TITLE", "TRACK", "YEAR",
}

const editorHelp = `edit> commands:
  TAG VALUE   set TAG to VALUE
  TAG         clear TAG
  tags        list the supported tags
  help, h     show this help
  quit, q     leave the editor`

// CollectEdits runs the line-based tag editor until the user quits and
// returns the edits in the order they were entered. EOF counts as
// quitting; only real input errors are returned.
func CollectEdits(in *bufio.Reader, out io.Writer) ([]Edit, error) {
	var edits []Edit
	for {
		fmt.Fprint(out, "edit> ")
		line, err := readLine(in)
		if err != nil {
			if err == io.EOF {
				return edits, nil
			}
			return edits, err
		}
		cmd, rest, _ := strings.Cut(line, " ")
		switch strings.ToLower(cmd) {
		case "":
			continue
		case "quit", "q":
			return edits, nil
		case "help", "h":
			fmt.Fprintln(out, editorHelp)
		case "tags":
			fmt.Fprintln(out, strings.Join(editableTags, " "))
		default:
			edit, err := ParseEdit(cmd + " " + rest)
			if err != nil {
				fmt.Fprintf(out, "%v, see tags for the supported ones\n", err)
				continue
			}
			edits = append(edits, edit)
		}
	}
}

// ParseEdit parses one editor line of the form "TAG [VALUE]". The tag
// name is matched case-insensitively and normalized to uppercase.
func ParseEdit(line string) (Edit, error) {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	cmd = strings.ToUpper(cmd)
	if !isEditableTag(cmd) {
		return Edit{}, fmt.Errorf("unknown tag %s", cmd)
	}
	rest = strings.TrimSpace(rest)
	return Edit{Tag: cmd, Value: rest, HasValue: rest != ""}, nil
}

func isEditableTag(tag string) bool {
	for _, t := range editableTags {
		if tag == t {
			return true
		}
	}
	return false
}
