package ui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// BrowserEnv overrides the command used to open profile links
const BrowserEnv = "GHSEEK_BROWSER"

// ExternalOps runs things outside the Bubble Tea screen: the pager and the
// system browser.
type ExternalOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewExternalOps creates a new ExternalOps instance
func NewExternalOps() *ExternalOps {
	return &ExternalOps{}
}

// SetProgram sets the program reference for terminal management
func (o *ExternalOps) SetProgram(p *tea.Program) {
	o.program = p
}

// ShowInPager shows content using the ov pager
func (o *ExternalOps) ShowInPager(content string) error {
	if o.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := o.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = o.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write on exit, it would mess with our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// OpenURL opens url in a new browser window without waiting for it
func (o *ExternalOps) OpenURL(url string) error {
	if url == "" {
		return fmt.Errorf("no profile link")
	}
	name, args := browserCommand(runtime.GOOS, os.Getenv(BrowserEnv), url)
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found in PATH", name)
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child in the background
	go func() { _ = cmd.Wait() }()
	return nil
}

// browserCommand picks the opener for the platform unless override is set
func browserCommand(goos, override, url string) (string, []string) {
	if override != "" {
		return override, []string{url}
	}
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
