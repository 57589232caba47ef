package ui

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Prompter reads and normalizes interactive input. Domain rules live in the
// service; the prompter only re-asks until input is usable.
type Prompter struct {
	in *bufio.Reader
}

func NewPrompter(in *bufio.Reader) *Prompter {
	return &Prompter{in: in}
}

func (p *Prompter) Line(label string) string {
	fmt.Print(label)
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// MenuChoice keeps asking until a number in [min, max] is entered.
func (p *Prompter) MenuChoice(min, max int) int {
	for {
		raw := p.Line(fmt.Sprintf("\nPlease select an option (%d-%d): ", min, max))
		choice, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Please enter a valid number.")
			continue
		}
		if choice < min || choice > max {
			fmt.Printf("Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return choice
	}
}

// MultiLine collects lines until an empty one, joined with spaces.
func (p *Prompter) MultiLine(label string) string {
	fmt.Println(label)
	fmt.Println("(Press Enter on an empty line to finish)")

	var lines []string
	for {
		line, _ := p.in.ReadString('\n')
		line = strings.TrimRight(line, "\n")
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}

func (p *Prompter) WaitForEnter() {
	fmt.Print("\nPress Enter to continue...")
	_, _ = p.in.ReadString('\n')
}

func (p *Prompter) YesNo(label string) bool {
	answer := strings.ToLower(p.Line(label + " (y/n): "))
	return strings.HasPrefix(answer, "y")
}
