package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const spinnerFrames = `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏`

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// Spinner is a terminal progress indicator with an optional
// progress text shown after the spinning glyph.
type Spinner struct {
	mu         sync.Mutex
	delay      time.Duration
	writer     io.Writer
	message    string
	progress   string
	lastOutput string
	hideCursor bool
	stop       chan struct{}
	stopped    chan struct{}

	// StopMsg is printed once the spinner is stopped.
	StopMsg string
}

// NewSpinner creates a spinner writing to stderr every d.
func NewSpinner(msg string, d time.Duration, hideCursor bool) *Spinner {
	return &Spinner{
		delay:      d,
		writer:     os.Stderr,
		message:    msg,
		hideCursor: hideCursor,
	}
}

// Start starts spinning in a new goroutine. It must not be called twice without Stop.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, hideCursor)
	}
	s.stop = make(chan struct{})
	s.stopped = make(chan struct{})

	go s.spin(s.stop, s.stopped)
}

func (s *Spinner) spin(stop <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	frames := []rune(spinnerFrames)
	for i := 0; ; i = (i + 1) % len(frames) {
		s.mu.Lock()
		out := fmt.Sprintf("\r%s%s %c%s", s.message, SuccessColor, frames[i], DefaultColor)
		if s.progress != "" {
			out += " " + s.progress
		}
		fmt.Fprint(s.writer, out)
		s.lastOutput = out
		s.mu.Unlock()

		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

// Progress sets a short status shown right after the spinner glyph.
func (s *Spinner) Progress(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress = msg
}

// Stop halts the spinner, clears its line and prints StopMsg.
// Calling Stop on a spinner which is not running is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()
	stop, stopped := s.stop, s.stopped
	s.stop, s.stopped = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-stopped

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
	s.RestoreCursor()
	if s.StopMsg != "" {
		fmt.Fprint(s.writer, s.StopMsg)
	}
}

// RestoreCursor makes the cursor visible again.
func (s *Spinner) RestoreCursor() {
	if s.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, showCursor)
	}
}

// clear deletes the last printed line. The caller must hold the lock.
func (s *Spinner) clear() {
	n := utf8.RuneCountInString(s.lastOutput)
	s.lastOutput = ""

	if runtime.GOOS == "windows" {
		fmt.Fprint(s.writer, "\r"+strings.Repeat(" ", n)+"\r")
		return
	}
	fmt.Fprint(s.writer, "\r\033[K")
}
