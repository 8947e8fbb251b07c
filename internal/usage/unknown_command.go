package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when a command does not exist. Optional
// suggestions are appended as a "did you mean" hint.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("cliform: '%s' is not a cliform command. See 'cliform --help'.", command)

	if len(suggestions) > 0 {
		msg += "\n\nDid you mean one of these?\n"
		for _, s := range suggestions {
			msg += "   " + s + "\n"
		}
		msg = strings.TrimRight(msg, "\n")
	}

	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
