package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/alnah/go-txt2docx/internal/fileutil"
)

const (
	inputPrompt = "Enter TXT file path: "
	pausePrompt = "Press any key to exit..."
)

// promptInputPath asks for the input file on stdin. Surrounding whitespace
// and double quotes are removed. An empty answer or closed stdin returns
// ErrNoInput.
func promptInputPath(env *Environment) (string, error) {
	fmt.Fprint(env.Stdout, inputPrompt)

	line, err := bufio.NewReader(env.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: reading prompt: %w", ErrNoInput, err)
	}
	path := fileutil.CleanPromptInput(line)
	if path == "" {
		return "", ErrNoInput
	}
	return path, nil
}

// pauseBeforeExit keeps the console window open until a key is pressed.
// It is a no-op when disabled or when stdin is not a terminal, so scripts
// and pipes never block.
func pauseBeforeExit(env *Environment, enabled bool) {
	if !enabled || env.IsTerminal == nil || !env.IsTerminal() {
		return
	}
	fmt.Fprint(env.Stdout, pausePrompt)
	_ = env.ReadKey()
	fmt.Fprintln(env.Stdout)
}
