package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/petgarden/internal/logger"
)

// Format renders err for the terminal with an "Error: " prefix. The
// "domain.op:" tag of a DomainError is dropped so users see only its
// message and any context wrapped around it.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	var de *DomainError
	if stderrors.As(err, &de) {
		msg = strings.Replace(msg, de.Domain+"."+de.Op+": ", "", 1)
	}
	return fmt.Sprintf("Error: %s", msg)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
