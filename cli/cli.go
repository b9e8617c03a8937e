// Package cli provides the plain terminal host for the dungeon. It
// implements the host interfaces over stdin/stdout and runs the outer
// game loop: prompt, execute, check for death or escape.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"github.com/jboenig/AdventureGame/engine"
	"github.com/jboenig/AdventureGame/host"
)

// CLI hosts a game on a line-oriented terminal.
type CLI struct {
	In        io.Reader
	Out       io.Writer
	Plain     bool // disable color output
	EchoInput bool // echo each input line after the prompt (for script playback)

	game    *engine.Game
	scanner *bufio.Scanner
	running bool
	lastCmd string // for "again"/"g" repeat
}

// New creates a CLI on stdin/stdout and wires a game to it. The CLI
// itself serves as the game's output, prompter and control surface;
// sound cues are dropped.
func New(builder engine.Builder, seed int64) *CLI {
	c := &CLI{In: os.Stdin, Out: os.Stdout}
	c.game = engine.New(builder, c, c, host.NopAudio{}, c, seed)
	return c
}

// Game returns the hosted game.
func (c *CLI) Game() *engine.Game { return c.game }

// Run plays the game until the player quits or declines a restart.
func (c *CLI) Run() {
	c.scanner = bufio.NewScanner(c.In)
	c.running = true

	c.banner("=========================================================")
	c.banner("==                WELCOME TO THE DUNGEON               ==")
	c.banner("=========================================================")

	c.game.DisplayIntro()
	c.game.DescribeCurrentRoom()

	for c.running {
		c.Println("")

		switch c.game.State() {
		case engine.StateDead:
			if c.confirm("one ticket to a r movie pls - play again (Y/N)?") {
				c.restart()
			} else {
				c.running = false
			}

		case engine.StateEscaped:
			c.running = false
			if c.confirm("Congratulations, you've escaped! Play again?") {
				c.running = true
				c.restart()
			}

		default:
			c.game.DisplaySeparator()
			c.Println("What would you like to do?")
			line, ok := c.readCommand()
			if !ok {
				c.running = false
				break
			}
			if line == "" {
				continue
			}
			if !c.game.Execute(line) {
				c.warn("That is not a valid command - type help for a list of commands")
			}
		}
	}
}

func (c *CLI) restart() {
	c.game.Reset()
	c.game.DisplayIntro()
}

// readCommand shows the prompt and reads one command line. Blank
// lines and comment lines are skipped so script files stay readable.
// "again" or "g" repeats the last command.
func (c *CLI) readCommand() (string, bool) {
	c.prompt("> ")
	if !c.scanner.Scan() {
		return "", false
	}
	line := strings.TrimSpace(c.scanner.Text())
	if line == "" || strings.HasPrefix(line, "#") {
		return "", true
	}
	if c.EchoInput {
		c.Println(line)
	}

	lower := strings.ToLower(line)
	if lower == "again" || lower == "g" {
		if c.lastCmd == "" {
			c.Println("Nothing to repeat.")
			return "", true
		}
		return c.lastCmd, true
	}
	c.lastCmd = line
	return line, true
}

// Print writes game text without a trailing newline.
func (c *CLI) Print(msg string) {
	fmt.Fprint(c.Out, msg)
}

// Println writes one line of game text.
func (c *CLI) Println(msg string) {
	fmt.Fprintln(c.Out, msg)
}

// Clear wipes the screen before a map redraw.
func (c *CLI) Clear() {
	if c.Plain {
		fmt.Fprintln(c.Out)
		return
	}
	fmt.Fprint(c.Out, "\033[2J\033[H")
}

// Confirm asks a yes/no question and reads one line.
func (c *CLI) Confirm(title, question string) bool {
	return c.confirm(question + " (Y/N)")
}

// Ask poses a question and returns the answer line.
func (c *CLI) Ask(title, question string) string {
	c.Print(c.paint(color.Cyan, question))
	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.In)
	}
	if !c.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}

// Exit stops the game loop after the current command.
func (c *CLI) Exit() {
	c.running = false
}

func (c *CLI) confirm(question string) bool {
	answer := c.Ask("", question+" ")
	return strings.HasPrefix(strings.ToLower(answer), "y")
}

func (c *CLI) banner(line string) {
	c.Println(c.paint(color.Yellow, line))
}

func (c *CLI) warn(line string) {
	c.Println(c.paint(color.Red, line))
}

func (c *CLI) prompt(text string) {
	c.Print(c.paint(color.Green, text))
}

func (c *CLI) paint(cl color.Color, text string) string {
	if c.Plain {
		return text
	}
	return cl.Render(text)
}
