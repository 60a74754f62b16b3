// Command cli is the terminal front end for the password generator: flag
// mode for one-shot generation and an interactive console with strength-bar
// coloring and clipboard copy.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	prompt "github.com/c-bata/go-prompt"
	"github.com/passforge/passforge-go/internal/generator"
)

const ansiReset = "\x1b[0m"

var ansiColors = map[string]string{
	"green":  "\x1b[32m",
	"yellow": "\x1b[33m",
	"orange": "\x1b[38;5;208m",
	"red":    "\x1b[31m",
}

func colorize(color, s string) string {
	code, ok := ansiColors[color]
	if !ok {
		return s
	}
	return code + s + ansiReset
}

// strengthBar renders the four-segment strength indicator in the profile's
// color.
func strengthBar(level generator.StrengthLevel, p generator.Profile) string {
	filled := int(level) + 1
	bar := strings.Repeat("█", filled) + strings.Repeat("░", generator.NumLevels-filled)
	return colorize(p.Color, bar+" "+p.Label)
}

// osc52Clipboard writes to the terminal clipboard via an OSC 52 escape
// sequence. Terminals without OSC 52 support silently ignore it — clipboard
// failure is this adapter's concern, never the generator's.
type osc52Clipboard struct{}

func (osc52Clipboard) WriteString(text string) error {
	_, err := fmt.Fprintf(os.Stdout, "\x1b]52;c;%s\x07", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}

// cliConfig holds the parsed command-line flags.
type cliConfig struct {
	Length      int
	Strength    string
	NoUpper     bool
	NoLower     bool
	NoNumbers   bool
	NoSymbols   bool
	Count       int
	Copy        bool
	Interactive bool
}

// parseFlags registers and parses flags on the given FlagSet so tests can
// run it without touching global flag state.
func parseFlags(fs *flag.FlagSet, args []string) (cliConfig, error) {
	var cfg cliConfig

	fs.IntVar(&cfg.Length, "length", 12, "password length")
	fs.IntVar(&cfg.Length, "l", 12, "password length (shorthand)")

	fs.StringVar(&cfg.Strength, "strength", "medium", "strength level: weak, medium, strong, extreme")
	fs.StringVar(&cfg.Strength, "s", "medium", "strength level (shorthand)")

	fs.BoolVar(&cfg.NoUpper, "no-upper", false, "exclude uppercase letters")
	fs.BoolVar(&cfg.NoLower, "no-lower", false, "exclude lowercase letters")
	fs.BoolVar(&cfg.NoNumbers, "no-numbers", false, "exclude digits")
	fs.BoolVar(&cfg.NoSymbols, "no-symbols", false, "exclude symbols")

	fs.IntVar(&cfg.Count, "count", 1, "number of passwords to generate")
	fs.IntVar(&cfg.Count, "c", 1, "number of passwords (shorthand)")

	fs.BoolVar(&cfg.Copy, "copy", false, "copy the last password to the clipboard (OSC 52)")
	fs.BoolVar(&cfg.Interactive, "i", false, "interactive console")

	err := fs.Parse(args)
	return cfg, err
}

func main() {
	cfg, err := parseFlags(flag.NewFlagSet("passforge", flag.ExitOnError), os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	level, err := generator.ParseLevel(cfg.Strength)
	if err != nil {
		fmt.Fprintln(os.Stderr, "passforge:", err)
		os.Exit(2)
	}
	if cfg.Length < 0 {
		fmt.Fprintln(os.Stderr, "passforge: length must be non-negative")
		os.Exit(2)
	}

	gen := generator.New(generator.DefaultProfiles(), cfg.Length, osc52Clipboard{})
	if _, err := gen.SetStrength(level); err != nil {
		fmt.Fprintln(os.Stderr, "passforge:", err)
		os.Exit(2)
	}
	gen.SetToggles(generator.Toggles{
		Uppercase: !cfg.NoUpper,
		Lowercase: !cfg.NoLower,
		Numbers:   !cfg.NoNumbers,
		Symbols:   !cfg.NoSymbols,
	})

	if cfg.Interactive {
		runConsole(gen)
		return
	}

	var last string
	for i := 0; i < cfg.Count; i++ {
		last = gen.Generate()
		fmt.Println(last)
	}
	if cfg.Copy {
		if err := gen.CopyToClipboard(last); err != nil {
			fmt.Fprintln(os.Stderr, "passforge: clipboard:", err)
		}
	}
}

// console is the interactive session state.
type console struct {
	gen     *generator.Generator
	last    string
	flashID atomic.Int64
	note    atomic.Value // string
}

func runConsole(gen *generator.Generator) {
	c := &console{gen: gen}
	c.note.Store("")

	fmt.Println("passforge interactive console — type help for commands")
	c.printConfig()

	p := prompt.New(c.execute, c.complete,
		prompt.OptionTitle("passforge"),
		prompt.OptionPrefix("passforge> "),
		prompt.OptionLivePrefix(c.livePrefix),
	)
	p.Run()
}

func (c *console) livePrefix() (string, bool) {
	note := c.note.Load().(string)
	if note == "" {
		return "", false
	}
	return note + " passforge> ", true
}

// flashNote shows a transient marker in the prompt prefix and reverts it
// shortly after. Retriggering moves the deadline: last write wins, no
// cancellation needed.
func (c *console) flashNote(note string) {
	id := c.flashID.Add(1)
	c.note.Store(note)
	time.AfterFunc(1500*time.Millisecond, func() {
		if c.flashID.Load() == id {
			c.note.Store("")
		}
	})
}

func (c *console) execute(in string) {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "generate", "g":
		c.last = c.gen.Generate()
		if c.last == "" {
			fmt.Println("(empty — every character class is disabled or length is 0)")
			return
		}
		fmt.Printf("%s  %s\n", c.last, colorize(c.gen.Profile().Color, fmt.Sprintf("(%d characters)", len(c.last))))
		c.flashNote("✔")

	case "length":
		if len(fields) != 2 {
			fmt.Println("usage: length <n>")
			return
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			fmt.Println("length must be a non-negative integer")
			return
		}
		c.gen.SetTargetLength(n)

	case "strength":
		if len(fields) != 2 {
			fmt.Println("usage: strength <weak|medium|strong|extreme>")
			return
		}
		level, err := generator.ParseLevel(fields[1])
		if err != nil {
			fmt.Println(err)
			return
		}
		p, err := c.gen.SetStrength(level)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(strengthBar(level, p))

	case "toggle":
		if len(fields) != 2 {
			fmt.Println("usage: toggle <upper|lower|numbers|symbols>")
			return
		}
		t := c.gen.Config().Toggles
		switch fields[1] {
		case "upper":
			t.Uppercase = !t.Uppercase
		case "lower":
			t.Lowercase = !t.Lowercase
		case "numbers":
			t.Numbers = !t.Numbers
		case "symbols":
			t.Symbols = !t.Symbols
		default:
			fmt.Println("unknown class:", fields[1])
			return
		}
		c.gen.SetToggles(t)
		c.printConfig()

	case "show":
		c.printConfig()

	case "copy":
		if c.last == "" {
			fmt.Println("nothing to copy — generate a password first")
			return
		}
		if err := c.gen.CopyToClipboard(c.last); err != nil {
			fmt.Println("clipboard:", err)
			return
		}
		c.flashNote("⧉")

	case "help":
		fmt.Println("commands:")
		fmt.Println("  generate            generate a password (alias: g)")
		fmt.Println("  length <n>          set the target length")
		fmt.Println("  strength <level>    weak, medium, strong or extreme")
		fmt.Println("  toggle <class>      flip upper, lower, numbers or symbols")
		fmt.Println("  show                show the current configuration")
		fmt.Println("  copy                copy the last password (OSC 52)")
		fmt.Println("  exit                leave the console")

	case "exit", "quit":
		os.Exit(0)

	default:
		fmt.Println("unknown command:", fields[0])
	}
}

func (c *console) printConfig() {
	cfg := c.gen.Config()
	p := c.gen.Profile()

	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	fmt.Printf("length %d  %s  upper=%s lower=%s numbers=%s symbols=%s\n",
		cfg.Length,
		strengthBar(cfg.Strength, p),
		onOff(cfg.Toggles.Uppercase),
		onOff(cfg.Toggles.Lowercase),
		onOff(cfg.Toggles.Numbers),
		onOff(cfg.Toggles.Symbols),
	)
}

func (c *console) complete(d prompt.Document) []prompt.Suggest {
	args := strings.Fields(d.TextBeforeCursor())

	if len(args) > 1 || (len(args) == 1 && strings.HasSuffix(d.TextBeforeCursor(), " ")) {
		switch args[0] {
		case "strength":
			return prompt.FilterHasPrefix([]prompt.Suggest{
				{Text: "weak", Description: "letters-heavy, few symbols"},
				{Text: "medium", Description: "default"},
				{Text: "strong", Description: "more symbols"},
				{Text: "extreme", Description: "symbol-heavy"},
			}, d.GetWordBeforeCursor(), true)
		case "toggle":
			return prompt.FilterHasPrefix([]prompt.Suggest{
				{Text: "upper", Description: "uppercase letters"},
				{Text: "lower", Description: "lowercase letters"},
				{Text: "numbers", Description: "digits"},
				{Text: "symbols", Description: "special characters"},
			}, d.GetWordBeforeCursor(), true)
		}
		return nil
	}

	return prompt.FilterHasPrefix([]prompt.Suggest{
		{Text: "generate", Description: "generate a password"},
		{Text: "length", Description: "set the target length"},
		{Text: "strength", Description: "set the strength level"},
		{Text: "toggle", Description: "flip a character class"},
		{Text: "show", Description: "show the current configuration"},
		{Text: "copy", Description: "copy the last password"},
		{Text: "help", Description: "list commands"},
		{Text: "exit", Description: "leave the console"},
	}, d.GetWordBeforeCursor(), true)
}
