package app

import (
	"os"
	"sync"
)

// terminalOutput is the program's output stream. The renderer writes each
// frame in one call; bells from haptic feedback take the same lock so they
// land between frames and never inside an escape sequence.
//
// Embedding the file keeps Fd, Read and Close, so bubbletea still detects a
// terminal and sizes the window from it.
type terminalOutput struct {
	*os.File
	mu sync.Mutex
}

func newTerminalOutput(f *os.File) *terminalOutput {
	return &terminalOutput{File: f}
}

// Write implements io.Writer.
func (o *terminalOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.File.Write(p)
}

// WriteString implements io.StringWriter. The renderer sends cursor and
// erase sequences through it.
func (o *terminalOutput) WriteString(s string) (int, error) {
	return o.Write([]byte(s))
}
