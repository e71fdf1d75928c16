package main

import (
	"fmt"
	"log"
	"os"

	term "github.com/nsf/termbox-go"
	"gopkg.in/urfave/cli.v2"

	"easy6502/cpu"
)

func main() {
	app := &cli.App{
		Name:  "easy6502",
		Usage: "run a raw 6502 machine code image",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "raw image to load",
			},
			&cli.UintFlag{
				Name:  "org",
				Usage: "load offset",
				Value: 0x0300,
			},
			&cli.UintFlag{
				Name:  "entry",
				Usage: "entry point (defaults to the load offset)",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "RAM size in bytes",
				Value: 0x10000,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "dump registers and memory after every step",
			},
			&cli.BoolFlag{
				Name:  "trap",
				Usage: "halt when the PC gets stuck in a tight loop",
			},
			&cli.BoolFlag{
				Name:  "step",
				Usage: "single-step: enter executes one instruction",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "interactive TUI debugger",
			},
		},
		Action: run,
	}

	app.Run(os.Args)
}

func run(c *cli.Context) error {
	romFile := c.String("rom")
	if romFile == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("", 86)
	}

	rom, err := os.ReadFile(romFile)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error loading ROM: %s", err), 1)
	}

	machine := cpu.New(c.Int("size"))
	machine.TrapDetector = c.Bool("trap")

	org := uint16(c.Uint("org"))
	if err := machine.Load(rom, org); err != nil {
		return cli.Exit(fmt.Sprintf("error loading ROM: %s", err), 1)
	}
	log.Printf("Loaded ROM: %s (%d bytes at $%04x)", romFile, len(rom), org)

	entry := org
	if c.IsSet("entry") {
		entry = uint16(c.Uint("entry"))
	}
	machine.SetEntry(entry)

	switch {
	case c.Bool("debug"):
		if err := machine.Debug(); err != nil {
			return cli.Exit(fmt.Sprintf("debugger: %s", err), 1)
		}

	case c.Bool("step"):
		if err := stepLoop(machine); err != nil {
			return cli.Exit(fmt.Sprintf("step mode: %s", err), 1)
		}

	default:
		if err := machine.Run(c.Bool("trace")); err != nil {
			log.Printf("CPU fault: %s", err)
		}
	}

	log.Printf("CPU stopped: %s", machine.Halt())
	machine.DumpRegisters()

	if machine.Halt() != cpu.HaltBreak {
		return cli.Exit("", 1)
	}
	return nil
}

// stepLoop executes one instruction per enter key, dumping registers
// in between, until the CPU halts or ctrl-c is pressed.
func stepLoop(machine *cpu.CPU) error {
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Close()

	for {
		machine.DumpRegisters()

		ev := term.PollEvent()
		if ev.Type != term.EventKey {
			continue
		}

		switch ev.Key {
		case term.KeyCtrlC:
			return nil
		case term.KeyEnter:
			ok, err := machine.Step()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
}
