package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Messages for the TUI
type (
	tickMsg   time.Time
	loadedMsg struct {
		leftText  string
		rightText string
		leftMod   time.Time
		rightMod  time.Time
	}
	errMsg error
)

// tickCmd returns a command that ticks at the watch interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadFilesCmd reads both documents from disk.
func loadFilesCmd(leftPath, rightPath string) tea.Cmd {
	return func() tea.Msg {
		return loadFiles(leftPath, rightPath)
	}
}

// checkFilesCmd re-reads the documents only when a modification time moved.
// A stale in-flight result is simply superseded by the next tick.
func checkFilesCmd(leftPath, rightPath string, leftMod, rightMod time.Time) tea.Cmd {
	return func() tea.Msg {
		if mtime(leftPath).Equal(leftMod) && mtime(rightPath).Equal(rightMod) {
			return nil
		}
		return loadFiles(leftPath, rightPath)
	}
}

func loadFiles(leftPath, rightPath string) tea.Msg {
	left, err := readDocument(leftPath)
	if err != nil {
		return errMsg(err)
	}
	right, err := readDocument(rightPath)
	if err != nil {
		return errMsg(err)
	}
	return loadedMsg{
		leftText:  left,
		rightText: right,
		leftMod:   mtime(leftPath),
		rightMod:  mtime(rightPath),
	}
}

// readDocument treats a missing file as an absent document so that watching
// survives editors that replace files non-atomically.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func mtime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
