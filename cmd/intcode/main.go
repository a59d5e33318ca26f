// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell"
	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/ezrec/intcode/config"
	"github.com/ezrec/intcode/device/amplifier"
	"github.com/ezrec/intcode/device/arcade"
	"github.com/ezrec/intcode/device/gravity"
	"github.com/ezrec/intcode/device/robot"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/program"
)

func main() {
	var configFile string
	var programFile string
	var mode string
	var inputs string
	var verbose bool

	flag.StringVar(&configFile, "c", "", ".toml configuration file")
	flag.StringVar(&programFile, "p", "", "IntCode program file")
	flag.StringVar(&mode, "m", "run", "Mode: run, amp, paint, arcade, gravity")
	flag.StringVar(&inputs, "i", "", "Comma separated inputs, instead of stdin")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	fs := afero.NewOsFs()

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(fs, configFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Flags given on the command line override the file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "p":
			cfg.Program = programFile
		case "v":
			cfg.Verbose = verbose
		case "i":
			values, err := program.Parse(strings.NewReader(inputs))
			if err != nil {
				log.Fatalf("-i: %v", err)
			}
			cfg.Inputs = values
		}
	})

	if len(cfg.Program) == 0 {
		log.Fatalf("%v: no program given", os.Args[0])
	}

	prog, err := program.Load(fs, cfg.Program)
	if err != nil {
		log.Fatal(err)
	}

	switch mode {
	case "run":
		err = runEmulator(cfg, prog, os.Stdin, os.Stdout)
	case "amp":
		err = runAmplifier(cfg, prog)
	case "paint":
		err = runRobot(cfg, prog)
	case "arcade":
		err = runArcade(cfg, prog)
	case "gravity":
		err = runGravity(cfg, prog)
	default:
		log.Fatalf("%v: unknown mode '%v'", os.Args[0], mode)
	}

	if err != nil {
		log.Fatal(err)
	}
}

// runEmulator runs the program, taking inputs from the configuration first
// and then one line at a time from the reader.
func runEmulator(cfg *config.Config, prog program.Program, in io.Reader, out io.Writer) (err error) {
	emu := emulator.NewEmulator(prog)
	emu.Verbose = cfg.Verbose
	emu.Reset()
	emu.Machine.Input.Extend(cfg.Inputs...)

	interactive := false
	if file, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(file.Fd()))
	}
	scanner := bufio.NewScanner(in)

	emu.Input = func() (values []int64, ok bool) {
		for {
			if interactive {
				fmt.Fprint(out, "> ")
			}
			if !scanner.Scan() {
				return
			}
			line := strings.TrimSpace(scanner.Text())
			if len(line) == 0 {
				continue
			}
			var err error
			values, err = program.Parse(strings.NewReader(line))
			if err != nil {
				log.Printf("input: %v", err)
				continue
			}
			ok = true
			return
		}
	}

	emu.Output = func(value int64) (err error) {
		_, err = fmt.Fprintln(out, value)
		return
	}

	err = emu.Run()
	return
}

func runAmplifier(cfg *config.Config, prog program.Program) (err error) {
	best, phases, err := amplifier.MaxSignal(prog, cfg.Amplifier.Phases, cfg.Amplifier.Feedback)
	if err != nil {
		return
	}

	fmt.Printf("%d %v\n", best, phases)
	return
}

func runRobot(cfg *config.Config, prog program.Program) (err error) {
	start := robot.BLACK
	if cfg.Robot.StartColor == "white" {
		start = robot.WHITE
	}

	bot := robot.NewRobot(prog, start)
	bot.Verbose = cfg.Verbose

	err = bot.Run()
	if err != nil {
		return
	}

	fmt.Println(bot.PaintedCount())
	fmt.Println(bot.Render())
	return
}

func runArcade(cfg *config.Config, prog program.Program) (err error) {
	cab := arcade.NewCabinet(prog, cfg.Arcade.FreePlay)
	cab.Verbose = cfg.Verbose

	if cfg.Arcade.Screen {
		var screen tcell.Screen
		screen, err = tcell.NewScreen()
		if err != nil {
			return
		}
		err = screen.Init()
		if err != nil {
			return
		}
		cab.Screen = screen
		defer func() {
			if cab.Screen != nil {
				cab.Screen.Fini()
			}
		}()
	}

	blocks := -1
	for done := false; !done; {
		done, err = cab.Step()
		if err != nil {
			return
		}
		// The board is fully drawn by the first joystick request.
		if blocks < 0 && cab.Machine.WaitingForInput {
			blocks = cab.Count(arcade.TILE_BLOCK)
		}
	}

	if blocks < 0 {
		blocks = cab.Count(arcade.TILE_BLOCK)
	}

	if cab.Screen != nil {
		cab.Screen.Fini()
		cab.Screen = nil
	}

	fmt.Printf("blocks %d\n", blocks)
	fmt.Printf("score %d\n", cab.Score)
	return
}

func runGravity(cfg *config.Config, prog program.Program) (err error) {
	ga := &gravity.Assist{Verbose: cfg.Verbose, Program: prog}

	first, err := ga.Run(12, 2)
	if err != nil {
		return
	}

	answer, err := ga.Search(cfg.Gravity.Target)
	if err != nil {
		return
	}

	fmt.Println(first)
	fmt.Println(answer)
	return
}
