// Dungeon is a turn-based text adventure: explore the maze, gather
// runes, find the escape portal.
// Usage: dungeon [--version] [--plain] [--map <name>] [--seed <n>] [--script <file>] [game_directory]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jboenig/AdventureGame/cli"
	"github.com/jboenig/AdventureGame/content"
	"github.com/jboenig/AdventureGame/engine/worldgen"
	"github.com/jboenig/AdventureGame/loader"
	"github.com/jboenig/AdventureGame/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	seed := time.Now().UnixNano()
	var gameDir string
	var scriptFile string
	var mapName string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("dungeon %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--map":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--map requires a layout name\n")
				os.Exit(1)
			}
			i++
			mapName = args[i]
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires a number\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "bad seed %q\n", args[i])
				os.Exit(1)
			}
			seed = n
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			if gameDir == "" {
				gameDir = args[i]
			}
		}
	}

	// Load Lua game content, embedded stock content by default.
	var defs *worldgen.Defs
	var err error
	if gameDir != "" {
		defs, err = loader.Load(gameDir)
	} else {
		defs, err = loader.LoadFS(content.FS())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}
	if mapName != "" {
		defs.Game.Map = mapName
	}

	builder := worldgen.New(defs)

	// Script mode: read commands from a file, force plain output.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(builder, seed)
		c.In = f
		c.Plain = true
		c.EchoInput = true
		c.Run()
		return
	}

	// Use the plain CLI if asked for, or when stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(builder, seed)
		c.Plain = plain
		c.Run()
		return
	}

	if err := tui.Run(builder, seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
