package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/fishpi-cli/internal/ports"
	"github.com/charmbracelet/x/term"
)

const maxLineBytes = 1 << 20

type lineResult struct {
	line string
	err  error
}

// LineReader serves operator input to both the dispatch loop and password
// prompts, so a prompt raised by a command reads the next typed line.
// Input is only consumed when a read is requested.
type LineReader struct {
	in     io.Reader
	prompt io.Writer

	startOnce sync.Once
	closeOnce sync.Once
	requests  chan struct{}
	results   chan lineResult
	done      chan struct{}
	stopped   chan struct{}

	mu      sync.Mutex
	pending bool
	final   error
}

var _ ports.PasswordPrompter = (*LineReader)(nil)

func NewLineReader(in io.Reader, prompt io.Writer) *LineReader {
	if prompt == nil {
		prompt = io.Discard
	}
	return &LineReader{
		in:       in,
		prompt:   prompt,
		requests: make(chan struct{}, 1),
		results:  make(chan lineResult),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (r *LineReader) start() {
	go func() {
		defer close(r.stopped)

		scanner := bufio.NewScanner(r.in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for {
			select {
			case <-r.done:
				return
			case <-r.requests:
			}

			var res lineResult
			if scanner.Scan() {
				res.line = strings.TrimSuffix(scanner.Text(), "\r")
			} else if err := scanner.Err(); err != nil {
				res.err = fmt.Errorf("read input: %w", err)
			} else {
				res.err = io.EOF
			}

			select {
			case <-r.done:
				return
			case r.results <- res:
			}
			if res.err != nil {
				return
			}
		}
	}()
}

// ReadLine blocks for the next line. It returns io.EOF once input is closed
// or the reader was closed.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	r.startOnce.Do(r.start)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.final != nil {
		return "", r.final
	}
	if !r.pending {
		r.requests <- struct{}{}
		r.pending = true
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-r.done:
		r.final = io.EOF
		return "", r.final
	case res := <-r.results:
		r.pending = false
		if res.err != nil {
			r.final = res.err
			return "", res.err
		}
		return res.line, nil
	}
}

// ReadPassword prompts for a password. On a terminal the typed characters are
// not echoed; any other input is read as a plain line.
func (r *LineReader) ReadPassword(ctx context.Context) (string, error) {
	_, _ = fmt.Fprintln(r.prompt, "请输入密码:")

	if fd, ok := r.terminalFd(); ok {
		secret, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(r.prompt)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}

	line, err := r.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Close stops the input goroutine. A line read after Close returns io.EOF.
func (r *LineReader) Close() {
	r.closeOnce.Do(func() { close(r.done) })
}

// terminalFd reports the descriptor of a terminal input that no pending line
// read is waiting on.
func (r *LineReader) terminalFd() (uintptr, bool) {
	f, ok := r.in.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(f.Fd()) {
		return 0, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return f.Fd(), !r.pending
}
