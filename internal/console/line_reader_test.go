package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReaderReadsLinesThenEOF(t *testing.T) {
	t.Parallel()

	reader := NewLineReader(strings.NewReader("one\r\ntwo\n"), io.Discard)

	line, err := reader.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	line, err = reader.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "two", line)

	_, err = reader.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	_, err = reader.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineReaderPasswordFromPipedInput(t *testing.T) {
	t.Parallel()

	prompt := &bytes.Buffer{}
	reader := NewLineReader(strings.NewReader("  s3cret \n#me\n"), prompt)

	password, err := reader.ReadPassword(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s3cret", password)
	assert.Equal(t, "请输入密码:\n", prompt.String())

	line, err := reader.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "#me", line)
}

func TestLineReaderNonTerminalFileIsReadAsLines(t *testing.T) {
	t.Parallel()

	pipeReader, pipeWriter, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = pipeReader.Close() })

	_, err = pipeWriter.WriteString("secret\n")
	require.NoError(t, err)
	require.NoError(t, pipeWriter.Close())

	reader := NewLineReader(pipeReader, io.Discard)
	_, isTerminal := reader.terminalFd()
	assert.False(t, isTerminal)

	password, err := reader.ReadPassword(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret", password)
}

func TestLineReaderCancelledReadKeepsNextLine(t *testing.T) {
	t.Parallel()

	pipeReader, pipeWriter := io.Pipe()
	t.Cleanup(func() { _ = pipeWriter.Close() })
	reader := NewLineReader(pipeReader, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := reader.ReadLine(ctx)
	require.ErrorIs(t, err, context.Canceled)

	go func() { _, _ = pipeWriter.Write([]byte("late\n")) }()

	line, err := reader.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "late", line)
}

func TestLineReaderCloseStopsInputGoroutine(t *testing.T) {
	t.Parallel()

	pipeReader, pipeWriter := io.Pipe()
	t.Cleanup(func() { _ = pipeWriter.Close() })
	reader := NewLineReader(pipeReader, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := reader.ReadLine(ctx)
	require.ErrorIs(t, err, context.Canceled)

	reader.Close()
	go func() { _, _ = pipeWriter.Write([]byte("unread\n")) }()

	select {
	case <-reader.stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("input goroutine still running after Close")
	}

	_, err = reader.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
