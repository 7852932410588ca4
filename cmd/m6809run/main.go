// Command m6809run loads a flat binary image into RAM at a load
// address and runs it against a cpu.Chip for a cycle budget.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v2"

	"github.com/jmchacon/m6809/cpu"
	"github.com/jmchacon/m6809/memory"
)

func main() {
	app := &cli.App{
		Name:    "m6809run",
		Usage:   "Run a flat 6809 binary image against the cpu core",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "flat binary image to load",
			},
			&cli.IntFlag{
				Name:    "load",
				Aliases: []string{"l"},
				Usage:   "address to load the image at",
				Value:   0x0200,
			},
			&cli.IntFlag{
				Name:    "reset",
				Aliases: []string{"r"},
				Usage:   "reset vector target (PC on start)",
				Value:   0x0200,
			},
			&cli.Uint64Flag{
				Name:    "budget",
				Aliases: []string{"b"},
				Usage:   "cycle budget to run",
				Value:   1_000_000,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log illegal opcodes and halts",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// stdoutLogger implements cpu.Logger by printing to stdout, used when
// -verbose is passed.
type stdoutLogger struct{}

func (stdoutLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

func run(c *cli.Context) error {
	imagePath := c.String("image")
	if imagePath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("", 86)
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading image: %v", err), 1)
	}

	ram, err := memory.New8BitRAMBank(1<<16, nil)
	if err != nil {
		return cli.Exit(fmt.Sprintf("allocating RAM: %v", err), 1)
	}

	load := uint16(c.Int("load"))
	for i, b := range data {
		ram.Write(load+uint16(i), b)
	}

	reset := uint16(c.Int("reset"))
	ram.Write(cpu.VecReset, uint8(reset>>8))
	ram.Write(cpu.VecReset+1, uint8(reset))

	opts := []cpu.Option{}
	if c.Bool("verbose") {
		opts = append(opts, cpu.WithLogger(stdoutLogger{}))
	}

	chip, err := cpu.New(ram, opts...)
	if err != nil {
		return cli.Exit(fmt.Sprintf("creating cpu: %v", err), 1)
	}
	chip.Reset()

	spent, runErr := chip.Run(c.Uint64("budget"))
	fmt.Printf("ran %d cycles, final PC=%.4X\n", spent, chip.PC)
	if runErr != nil {
		return cli.Exit(fmt.Sprintf("run stopped: %v", runErr), 1)
	}
	return nil
}
