package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lmorg/readline/v4"
	"golang.org/x/term"

	"github.com/symatic/symexpr"
)

// REPL reads expressions, simplifies them, and prints the results.
type REPL struct {
	input  io.Reader
	output io.Writer
}

func NewREPL() *REPL {
	return &REPL{
		input:  os.Stdin,
		output: os.Stdout,
	}
}

// isInteractive reports whether input is a terminal.
func (r *REPL) isInteractive() bool {
	if r.input == os.Stdin {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
	return false
}

// Run starts the loop, with line editing when attached to a terminal.
func (r *REPL) Run() error {
	if r.isInteractive() {
		return r.runInteractive()
	}

	scanner := bufio.NewScanner(r.input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if r.handleSpecialCommands(line) {
			continue
		}
		if err := r.processLine(line); err != nil {
			_, _ = fmt.Fprintf(r.output, "Error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %v", err)
	}
	return nil
}

func (r *REPL) runInteractive() error {
	rl := readline.NewInstance()
	rl.SetPrompt("symexpr> ")

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println("Error:", err)
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r.handleSpecialCommands(line) {
			continue
		}
		if err := r.processLine(line); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func (r *REPL) handleSpecialCommands(line string) bool {
	switch line {
	case "quit", "exit":
		if r.isInteractive() {
			_, _ = fmt.Fprintf(r.output, "Goodbye!\n")
		}
		os.Exit(0)
		return true
	case "help":
		r.printHelp()
		return true
	default:
		return false
	}
}

// processLine parses, simplifies and prints one expression. A fully
// constant expression has already folded, so its rendering is its value.
func (r *REPL) processLine(line string) error {
	out, err := r.EvaluateString(line)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(r.output, "%s\n", out)
	return nil
}

// EvaluateString parses and simplifies an expression, returning its
// rendering.
func (r *REPL) EvaluateString(input string) (string, error) {
	p, err := symexpr.Parse(input)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

// ExecuteFile runs a file of expressions, one per line, echoing
// In(n)/Out(n) pairs. Blank lines and # comments are skipped.
func (r *REPL) ExecuteFile(filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %v", err)
	}

	n := 0
	for lineNum, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		n++
		_, _ = fmt.Fprintf(r.output, "In(%d): %s\n", n, line)
		out, err := r.EvaluateString(line)
		if err != nil {
			return fmt.Errorf("error at line %d: %v", lineNum+1, err)
		}
		_, _ = fmt.Fprintf(r.output, "Out(%d): %s\n", n, out)
	}
	return nil
}

func (r *REPL) printHelp() {
	_, _ = fmt.Fprintf(r.output, `
symexpr shell
=============

Commands:
  quit, exit     - Exit the shell
  help           - Show this help message

Expressions simplify eagerly; a fully constant expression folds to its
value.

Examples:
  2*x + 3*x                # like terms collect: 5*x
  (x + y) - y              # cancellation: x
  sin(0.5) * 2             # constant folding
  (-2)**0.5                # complex promotion
  theta[0] + theta[1]      # indexed symbols

Operators:
  +, -, *, /, **           (pow is left-associative)

Functions:
  abs, sin, cos, tan, asin, acos, atan, exp, log, sign, sqrt
`)
}
