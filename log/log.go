package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type logLevel int

const (
	SilentLevel logLevel = iota
	NormalLevel
	VerboseLevel
	DebugLevel
)

var (
	infoPrefix    = "[*] " // Progress and status
	successPrefix = "[+] " // Positive findings
	warningPrefix = "[!] " // Recoverable problems
	errorPrefix   = "[-] " // Failures
	debugPrefix   = "[D] " // Wire-level detail

	out   io.Writer
	level logLevel
)

func init() {
	out = os.Stdout
	level = NormalLevel
}

func (t logLevel) String() string {
	switch t {
	case NormalLevel:
		return "Normal"
	case VerboseLevel:
		return "Verbose"
	case DebugLevel:
		return "Debug"
	}

	return "Silent"
}

// SetOut changes the output of logging to the supplied io.Writer. The default is
// os.Stdout. The supplied io.Writer must never be nil.
func SetOut(w io.Writer) {
	if w == nil {
		panic("log.SetOut() called with a nil io.Writer")
	}
	out = w
}

// Out returns the current io.Writer for specialist output functions which are not
// controlled by log levels. The return value will never be nil.
func Out() io.Writer {
	return out
}

// SetLevel sets the current logging level.
func SetLevel(l logLevel) {
	level = l
}

// Level returns the current level.
func Level() logLevel {
	return level
}

// IfNormal returns true if Normal logging is written to the output stream. Callers
// have access to these If* functions in cases where evaluation of the log arguments
// is expensive and they wish to minimize that cost.
func IfNormal() bool {
	return level >= NormalLevel
}

func IfVerbose() bool {
	return level >= VerboseLevel
}

func IfDebug() bool {
	return level >= DebugLevel
}

// Infof provides an approximate fmt.Printf equivalent interface to logging. Output
// is only generated if the level is >= Normal. A newline is always added to the end
// of the output so the caller should not supply one. All output is prefixed with the
// "[*]" status marker.
func Infof(format string, a ...interface{}) (n int, err error) {
	if level >= NormalLevel {
		s := fmt.Sprintf(format, a...)
		return prefixAndPrintLines(s, infoPrefix)
	}

	return 0, nil
}

// Info provides a fmt.Print like interface to logging. Output is only generated if
// the level is >= Normal. Info uses fmt.Sprint to generate the output line thus it
// inherits the feature whereby spaces are added between operands when neither is a
// string.
func Info(a ...interface{}) (n int, err error) {
	if level >= NormalLevel {
		s := fmt.Sprint(a...)
		return prefixAndPrintLines(s, infoPrefix)
	}

	return 0, nil
}

// Successf logs a positive finding with the "[+]" marker. Output is only generated
// if the level is >= Normal.
func Successf(format string, a ...interface{}) (n int, err error) {
	if level >= NormalLevel {
		s := fmt.Sprintf(format, a...)
		return prefixAndPrintLines(s, successPrefix)
	}

	return 0, nil
}

// Success provides the fmt.Print form of Successf.
func Success(a ...interface{}) (n int, err error) {
	if level >= NormalLevel {
		s := fmt.Sprint(a...)
		return prefixAndPrintLines(s, successPrefix)
	}

	return 0, nil
}

// Warningf logs a recoverable problem with the "[!]" marker. Output is only
// generated if the level is >= Normal.
func Warningf(format string, a ...interface{}) (n int, err error) {
	if level >= NormalLevel {
		s := fmt.Sprintf(format, a...)
		return prefixAndPrintLines(s, warningPrefix)
	}

	return 0, nil
}

// Warning provides the fmt.Print form of Warningf.
func Warning(a ...interface{}) (n int, err error) {
	if level >= NormalLevel {
		s := fmt.Sprint(a...)
		return prefixAndPrintLines(s, warningPrefix)
	}

	return 0, nil
}

// Errorf logs a failure with the "[-]" marker. Failures are logged at every level
// except Silent.
func Errorf(format string, a ...interface{}) (n int, err error) {
	if level >= NormalLevel {
		s := fmt.Sprintf(format, a...)
		return prefixAndPrintLines(s, errorPrefix)
	}

	return 0, nil
}

// Error provides the fmt.Print form of Errorf.
func Error(a ...interface{}) (n int, err error) {
	if level >= NormalLevel {
		s := fmt.Sprint(a...)
		return prefixAndPrintLines(s, errorPrefix)
	}

	return 0, nil
}

// Verbosef logs per-candidate progress detail. Output is only generated if the
// level is >= Verbose. Verbose output shares the "[*]" marker with Info.
func Verbosef(format string, a ...interface{}) (n int, err error) {
	if level >= VerboseLevel {
		s := fmt.Sprintf(format, a...)
		return prefixAndPrintLines(s, infoPrefix)
	}

	return 0, nil
}

// Verbose provides the fmt.Print form of Verbosef.
func Verbose(a ...interface{}) (n int, err error) {
	if level >= VerboseLevel {
		s := fmt.Sprint(a...)
		return prefixAndPrintLines(s, infoPrefix)
	}

	return 0, nil
}

// Debugf provides a fmt.Printf equivalent interface to logging. Output is only
// generated if the level is >= Debug.
func Debugf(format string, a ...interface{}) (n int, err error) {
	if level >= DebugLevel {
		s := fmt.Sprintf(format, a...)
		return prefixAndPrintLines(s, debugPrefix)
	}

	return 0, nil
}

// Debug provides a fmt.Print like interface to logging. Output is only generated if
// the level is >= Debug.
func Debug(a ...interface{}) (n int, err error) {
	if level >= DebugLevel {
		s := fmt.Sprint(a...)
		return prefixAndPrintLines(s, debugPrefix)
	}

	return 0, nil
}

// prefixAndPrintLines is the common handler which takes potentially multiple lines
// and sends them to the out stream prefixed with the supplied prefix.
func prefixAndPrintLines(lines, prefix string) (int, error) {
	if strings.Index(lines, "\n") == 0 { // Expect this to be the common case
		return fmt.Fprint(out, prefix, lines, "\n")
	}

	ar := strings.Split(lines, "\n")

	for len(ar) > 0 && len(ar[len(ar)-1]) == 0 { // Chomp trailing empty lines
		ar = ar[:len(ar)-1]
	}

	s := strings.Join(ar, "\n"+prefix) // Line1 \nprefix Line2 \nprefix Line3

	return fmt.Fprint(out, prefix, s, "\n")
}
