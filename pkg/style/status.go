package style

import "github.com/pterm/pterm"

// Step status indicators, printed between brackets in front of a step message
var (
	runningStyle = pterm.NewStyle(pterm.Bold)
	okStyle      = pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	errorStyle   = pterm.NewStyle(pterm.FgRed, pterm.Bold)
)

// RunningLabel marks a step that has started
func RunningLabel() string {
	return runningStyle.Sprint("***")
}

// StatusLabel returns the colored Ok/Error label for a finished step
func StatusLabel(ok bool) string {
	if ok {
		return okStyle.Sprint("Ok")
	}
	return errorStyle.Sprint("Error")
}

// Fatal formats a message that stops the run before any step executes
func Fatal(msg string) string {
	return errorStyle.Sprint(msg)
}
