/*
 * psx - interactive console
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package console is the liner-backed interactive REPL used to single-step
// and inspect a running Psx from a terminal.
package console

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"psx/internal/disasm"
	"psx/internal/psx"
	"psx/internal/width"
)

var commands = []string{"step", "run", "regs", "cop0", "mem", "dis", "help", "quit"}

// Run starts the REPL against machine until the user quits or aborts the
// prompt (Ctrl-D / Ctrl-C).
func Run(machine *psx.Psx, log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var out []string
		for _, c := range commands {
			if strings.HasPrefix(c, partial) {
				out = append(out, c)
			}
		}
		return out
	})

	for {
		cmd, err := line.Prompt("psx> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			log.Error("console: reading line", "err", err)
			return
		}
		line.AppendHistory(cmd)

		quit, err := dispatch(machine, cmd)
		if err != nil {
			fmt.Println("error: " + err.Error())
		}
		if quit {
			return
		}
	}
}

func dispatch(machine *psx.Psx, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "step":
		return false, cmdStep(machine, fields[1:])
	case "run":
		return false, cmdRun(machine, fields[1:])
	case "regs":
		cmdRegs(machine)
		return false, nil
	case "cop0":
		cmdCop0(machine)
		return false, nil
	case "mem":
		return false, cmdMem(machine, fields[1:])
	case "dis":
		return false, cmdDis(machine, fields[1:])
	case "help":
		printHelp()
		return false, nil
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q (try \"help\")", fields[0])
	}
}

func printHelp() {
	fmt.Println("commands: step [n] | run [n] | regs | cop0 | mem <addr> [len] | dis <addr> [n] | quit")
}

func parseUint(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad hex value %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseCount(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("bad count %q: %w", args[0], err)
	}
	return n, nil
}

func cmdStep(machine *psx.Psx, args []string) error {
	n, err := parseCount(args, 1)
	if err != nil {
		return err
	}
	retired, err := machine.Run(n)
	fmt.Printf("retired %d instruction(s)\n", retired)
	return err
}

func cmdRun(machine *psx.Psx, args []string) error {
	n, err := parseCount(args, 1_000_000)
	if err != nil {
		return err
	}
	retired, err := machine.Run(n)
	fmt.Printf("retired %d instruction(s)\n", retired)
	return err
}

func cmdRegs(machine *psx.Psx) {
	for i := 0; i < 32; i += 4 {
		fmt.Printf("r%-2d=%08x r%-2d=%08x r%-2d=%08x r%-2d=%08x\n",
			i, machine.Cpu.Reg(uint32(i)),
			i+1, machine.Cpu.Reg(uint32(i+1)),
			i+2, machine.Cpu.Reg(uint32(i+2)),
			i+3, machine.Cpu.Reg(uint32(i+3)))
	}
	fmt.Printf("pc=%08x lo=%08x hi=%08x\n", machine.Cpu.PC(), machine.Cpu.LO(), machine.Cpu.HI())
}

func cmdCop0(machine *psx.Psx) {
	c0 := machine.Cpu.Cop0()
	fmt.Printf("sr=%08x cause=%08x epc=%08x isolate_cache=%v\n",
		c0.SR(), c0.Cause(), c0.EPC(), c0.IsIsolateCache())
}

func cmdMem(machine *psx.Psx, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: mem <addr> [len]")
	}
	addr, err := parseUint(args[0])
	if err != nil {
		return err
	}
	n, err := parseCount(args[1:], 16)
	if err != nil {
		return err
	}
	for i := 0; i < n; i += 4 {
		val, err := machine.Bus.Load(width.Word, addr+uint32(i))
		if err != nil {
			return err
		}
		fmt.Printf("%08x: %08x\n", addr+uint32(i), val)
	}
	return nil
}

func cmdDis(machine *psx.Psx, args []string) error {
	addr := machine.Cpu.PC()
	if len(args) > 0 {
		a, err := parseUint(args[0])
		if err != nil {
			return err
		}
		addr = a
	}
	n, err := parseCount(args[1:], 10)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		word, err := machine.Bus.Load(width.Word, addr)
		if err != nil {
			return err
		}
		fmt.Printf("%08x: %s\n", addr, disasm.Format(word))
		addr += 4
	}
	return nil
}
