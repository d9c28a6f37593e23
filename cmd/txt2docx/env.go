package main

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// Environment holds injectable dependencies for testability.
// Includes console I/O, process environment and terminal control.
type Environment struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string

	// IsTerminal reports whether stdin is an interactive console.
	IsTerminal func() bool
	// ReadKey blocks until a single key is pressed.
	ReadKey func() error
}

// DefaultEnv returns the production environment bound to the process console.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) // #nosec G115 -- file descriptors fit in int
		},
		ReadKey: func() error {
			return readKey(os.Stdin)
		},
	}
}

// readKey reads one key in raw mode so the user doesn't have to press Enter.
// When raw mode is unavailable it falls back to reading a line.
func readKey(f *os.File) error {
	fd := int(f.Fd()) // #nosec G115 -- file descriptors fit in int
	state, err := term.MakeRaw(fd)
	if err != nil {
		_, err = bufio.NewReader(f).ReadString('\n')
		return err
	}
	defer func() { _ = term.Restore(fd, state) }()

	buf := make([]byte, 1)
	_, err = f.Read(buf)
	return err
}
