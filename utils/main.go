// utils is a package with terminal and logging helpers shared by the CLI.

package utils

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Verbose is set by the --verbose flag.
var Verbose bool

// Logger is the CLI logger. ConfigureLogger adjusts its level to Verbose.
var Logger = logrus.New()

// ConfigureLogger sends logs to stderr, at debug level when Verbose is set and errors only otherwise.
func ConfigureLogger() {
	Logger.SetOutput(os.Stderr)
	Logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: !Verbose})

	if Verbose {
		Logger.SetLevel(logrus.DebugLevel)
	} else {
		Logger.SetLevel(logrus.ErrorLevel)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TitleFirstWord upper-cases the first word of an error message for display.
func TitleFirstWord(msg string) string {
	caser := cases.Title(language.AmericanEnglish)
	words := strings.Split(msg, " ")
	words[0] = caser.String(words[0])
	return strings.Join(words, " ")
}

// HumanizeDuration humanizes time.Duration output to a meaningful value,
// golang's default “time.Duration“ output is badly formatted and unreadable.
func HumanizeDuration(duration time.Duration) string {
	if duration.Seconds() < 1.0 {
		return fmt.Sprintf("%d milliseconds", duration.Milliseconds())
	}
	if duration.Seconds() < 60.0 {
		return fmt.Sprintf("%d seconds", int64(duration.Seconds()))
	}
	if duration.Minutes() < 60.0 {
		remainingSeconds := math.Mod(duration.Seconds(), 60)
		return fmt.Sprintf("%d minutes %d seconds", int64(duration.Minutes()), int64(remainingSeconds))
	}
	remainingMinutes := math.Mod(duration.Minutes(), 60)
	remainingSeconds := math.Mod(duration.Seconds(), 60)
	return fmt.Sprintf("%d hours %d minutes %d seconds",
		int64(duration.Hours()), int64(remainingMinutes), int64(remainingSeconds))
}
