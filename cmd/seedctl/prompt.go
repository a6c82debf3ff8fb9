package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Klingon-tech/seedctl/internal/entropy"
	"golang.org/x/term"
)

var errAborted = errors.New("aborted by the user")

// ui reads answers from the terminal. When in is not a terminal (pipes,
// tests) every prompt reads a plain line.
type ui struct {
	in   *bufio.Reader
	file *os.File
	out  io.Writer
}

func newUI(in io.Reader, out io.Writer) *ui {
	u := &ui{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		u.file = f
	}
	return u
}

func (u *ui) isTerminal() bool {
	return u.file != nil
}

func (u *ui) readLine(prompt string) (string, error) {
	fmt.Fprint(u.out, prompt)
	line, err := u.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", errAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// choose shows a numbered menu and returns the 0-based choice.
// An empty answer selects def.
func (u *ui) choose(title string, items []string, def int) (int, error) {
	fmt.Fprintf(u.out, "%s\n", bold(title))
	for i, item := range items {
		marker := " "
		if i == def {
			marker = arrow("►")
		}
		fmt.Fprintf(u.out, " %s %d) %s\n", marker, i+1, item)
	}
	for {
		answer, err := u.readLine(fmt.Sprintf("Choice [%d]: ", def+1))
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return def, nil
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(items) {
			return n - 1, nil
		}
		fmt.Fprintf(u.out, "%s\n", warn(fmt.Sprintf("Enter a number from 1 to %d.", len(items))))
	}
}

// confirm asks a yes/no question. An empty answer selects def.
func (u *ui) confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		answer, err := u.readLine(fmt.Sprintf("%s [%s]: ", question, hint))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// readSecret reads a line without echo on a terminal.
func (u *ui) readSecret(prompt string) ([]byte, error) {
	if !u.isTerminal() {
		line, err := u.readLine(prompt)
		return []byte(line), err
	}
	fmt.Fprint(u.out, prompt)
	secret, err := term.ReadPassword(int(u.file.Fd()))
	fmt.Fprintln(u.out) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return secret, nil
}

// readDice reads dice digits until Enter. On a terminal each key press
// updates a status line with the entropy collected so far.
func (u *ui) readDice(bits int) (entropy.DiceSequence, error) {
	fmt.Fprintf(u.out, "\n%s\n", bold("[ Enter dice sequence (1-6) ]"))
	if !u.isTerminal() {
		line, err := u.readLine("> ")
		if err != nil {
			return nil, err
		}
		return entropy.ParseDice(line)
	}

	fd := int(u.file.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	var dice entropy.DiceSequence
	u.diceStatus(dice, bits)
	for {
		b, err := u.in.ReadByte()
		if err != nil {
			return nil, err
		}
		switch {
		case b >= '1' && b <= '6':
			dice = append(dice, b-'0')
		case b == 127 || b == 8: // backspace
			if len(dice) > 0 {
				dice = dice[:len(dice)-1]
			}
		case b == '\r' || b == '\n':
			fmt.Fprint(u.out, "\r\n")
			return dice, nil
		case b == 3 || b == 4: // Ctrl-C, Ctrl-D
			dice.Zero()
			fmt.Fprint(u.out, "\r\n")
			return nil, errAborted
		default:
			continue
		}
		u.diceStatus(dice, bits)
	}
}

func (u *ui) diceStatus(dice entropy.DiceSequence, bits int) {
	status := warn("... not enough")
	if dice.Bits() >= float64(bits) {
		status = good("✔ enough")
	}
	fmt.Fprintf(u.out, "\r\033[2K> Dice: %3d | Bits: %7.2f / %3d | %s | [%s]",
		len(dice), dice.Bits(), bits, status, dice)
}
