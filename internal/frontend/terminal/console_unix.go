//go:build !windows

package terminal

import (
	"errors"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// console reads single bytes from a raw mode, non blocking terminal.
type console struct {
	fd       int
	oldState *term.State
	events   chan byte
	stopCh   chan struct{}
	done     chan struct{}
	stopped  sync.Once
}

func openConsole(fd int) (*console, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	if err := syscall.SetNonblock(fd, true); err != nil {
		_ = term.Restore(fd, oldState)
		return nil, err
	}

	c := &console{
		fd:       fd,
		oldState: oldState,
		events:   make(chan byte, 64),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	go c.read()
	return c, nil
}

func (c *console) read() {
	defer close(c.done)
	buf := make([]byte, 16)

	for {
		select {
		case <-c.stopCh:
			return
		default:
		}

		n, err := syscall.Read(c.fd, buf)
		for _, b := range buf[:max(n, 0)] {
			select {
			case c.events <- b:
			default:
				// the driver is not keeping up, drop the event
			}
		}
		if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK) || n == 0 {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			close(c.events)
			return
		}
	}
}

func (c *console) close() {
	c.stopped.Do(func() {
		close(c.stopCh)
	})
	<-c.done
	_ = syscall.SetNonblock(c.fd, false)
	_ = term.Restore(c.fd, c.oldState)
}
