package ports

import "os/exec"

// EditorOpener defines the interface for jumping to a snippet's source
// heading in an external editor.
type EditorOpener interface {
	// OpenAt opens path in the user's preferred editor, positioned at the
	// given 1-based line. It uses $EDITOR, falling back to common editors.
	OpenAt(path string, line int) error

	// Command returns an exec.Cmd for the same jump.
	// This is useful for integrating with bubbletea's ExecProcess.
	Command(path string, line int) (*exec.Cmd, error)
}
