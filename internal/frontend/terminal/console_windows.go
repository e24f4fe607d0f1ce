//go:build windows

package terminal

import (
	"os"

	"golang.org/x/term"
)

// console reads single bytes from a raw mode terminal. The reading goroutine
// blocks in Read and ends with the process.
type console struct {
	fd       int
	oldState *term.State
	events   chan byte
}

func openConsole(fd int) (*console, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	c := &console{
		fd:       fd,
		oldState: oldState,
		events:   make(chan byte, 64),
	}
	go c.read()
	return c, nil
}

func (c *console) read() {
	buf := make([]byte, 16)
	for {
		n, err := os.Stdin.Read(buf)
		for _, b := range buf[:n] {
			select {
			case c.events <- b:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

func (c *console) close() {
	_ = term.Restore(c.fd, c.oldState)
}
