// Command wavectl is an interactive console for stepping a scene by hand.
// Animation time only moves with the advance command, which makes it useful
// for inspecting paths frame by frame. Type help for a list of commands.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
)

func main() {
	seed := flag.Uint64("seed", 1, "Random seed")
	verbose := flag.Bool("v", false, "Log scene events to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "waves> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete:    completer(),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	c := newConsole(rl.Stdout(), rand.New(rand.NewPCG(*seed, *seed)), logger)
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			log.Fatal(err)
		}
		line = strings.TrimSpace(line)
		if line == "quit" || line == "exit" {
			return
		}
		if err := c.exec(line); err != nil {
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
		}
	}
}

func completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands)+1)
	for _, cmd := range commands {
		items = append(items, readline.PcItem(cmd.name))
	}
	items = append(items, readline.PcItem("quit"))
	return readline.NewPrefixCompleter(items...)
}

// epoch is the time the console's clock starts at.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
