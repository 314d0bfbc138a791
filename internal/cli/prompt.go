package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/nurpe/fleetguardian/internal/model"
)

var (
	errText  = color.New(color.FgRed)
	hintText = color.New(color.FgYellow)
)

// Prompter reads validated values from the console, re-prompting until the
// input parses and falls inside the allowed range. If input runs out (EOF)
// the current prompt gives up and returns its zero-most acceptable value so
// the loop above can wind down instead of spinning.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) line(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	text, err := p.in.ReadString('\n')
	if err != nil && text == "" {
		return "", false
	}
	return strings.TrimRight(text, "\r\n"), true
}

// Line reads a raw line, which may be empty.
func (p *Prompter) Line(prompt string) string {
	text, _ := p.line(prompt)
	return text
}

// Int reads an integer in [min, max].
func (p *Prompter) Int(prompt string, min, max int) int {
	for {
		text, ok := p.line(prompt)
		if !ok {
			return min
		}
		if strings.TrimSpace(text) == "" {
			errText.Fprintln(p.out, "Input cannot be empty.")
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			errText.Fprintln(p.out, "Invalid input. Please enter digits only.")
			continue
		}
		if value < min || value > max {
			hintText.Fprintf(p.out, "Please enter a value between %d and %d.\n", min, max)
			continue
		}
		return value
	}
}

// Float reads a decimal in [min, max].
func (p *Prompter) Float(prompt string, min, max float64) float64 {
	for {
		text, ok := p.line(prompt)
		if !ok {
			return min
		}
		if strings.TrimSpace(text) == "" {
			errText.Fprintln(p.out, "Input cannot be empty.")
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			errText.Fprintln(p.out, "Invalid input. Please enter a numeric value.")
			continue
		}
		if value < min || value > max {
			hintText.Fprintf(p.out, "Please enter a value between %.1f and %.1f.\n", min, max)
			continue
		}
		return value
	}
}

// Date reads a dd/mm/yyyy date.
func (p *Prompter) Date(prompt string) model.Date {
	for {
		text, ok := p.line(prompt)
		if !ok {
			return model.Date{Day: 1, Month: 1, Year: 1}
		}
		d, err := model.ParseDate(text)
		if err != nil {
			errText.Fprintln(p.out, "Invalid date. Use format dd/mm/yyyy with valid values.")
			continue
		}
		return d
	}
}

// DriverName reads a non-empty name containing at least one non-digit.
func (p *Prompter) DriverName(prompt string) string {
	for {
		text, ok := p.line(prompt)
		if !ok {
			return "unknown"
		}
		text = strings.TrimSpace(text)
		if text == "" {
			errText.Fprintln(p.out, "Name cannot be empty.")
			continue
		}
		if allDigits(text) {
			errText.Fprintln(p.out, "Name cannot be only numbers. Please enter a proper name.")
			continue
		}
		return text
	}
}

func allDigits(s string) bool {
	hasDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == ' ' || r == '\t':
		default:
			return false
		}
	}
	return hasDigit
}
