package terminal

import (
	"fmt"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
)

// Error print error
func Error(err error, format string, a ...interface{}) {
	fmt.Printf("%s%s%s\n", red, withError(err, format, a...), reset)
}

// withError formats the message then appends the error, which is never used as a format
func withError(err error, format string, a ...interface{}) string {
	message := fmt.Sprintf(format, a...)
	if err != nil {
		message = fmt.Sprintf("%s [%s]", message, err)
	}
	return message
}

// Warn prints something the user should double check
func Warn(format string, a ...interface{}) {
	fmt.Printf("%s! %s%s\n", yellow, fmt.Sprintf(format, a...), reset)
}

// Info prints an indented informational line
func Info(format string, a ...interface{}) {
	fmt.Printf("    %s%s%s\n", blue, fmt.Sprintf(format, a...), reset)
}
