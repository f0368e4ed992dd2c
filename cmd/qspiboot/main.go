//go:build !tinygo

// Command qspiboot brings up a generic QSPI flash controller from
// Linux user space: it switches the controller and the attached
// flash into quad I/O mode and idles.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"periph.io/x/conn/v3/physic"
	"qspiboot.org/driver/genqspi"
	"qspiboot.org/trace"
)

// Backend hooks, replaced in tests.
var (
	mapPhys = genqspi.MapPhys
	openUIO = genqspi.OpenUIO
)

var errNoRegs = errors.New("specify -base or -uio")

func main() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "qspiboot: %v\n", err)
		os.Exit(2)
	}
}

func run(stdout io.Writer, args []string) error {
	fs := flag.NewFlagSet("qspiboot", flag.ContinueOnError)
	base := fs.Uint64("base", 0, "physical address of the controller registers")
	uio := fs.String("uio", "", "UIO device exposing the controller registers, such as /dev/uio0")
	console := fs.String("console", "", "serial device for console output (default stdout)")
	dryrun := fs.Bool("n", false, "dry run; record register stores instead of issuing them")
	traceFile := fs.String("trace", "", "write recorded register stores to `file` (dry run only)")
	trap := fs.Bool("trap", false, "halt on a debugger breakpoint instead of idling")
	clock := 50 * physic.MegaHertz
	fs.Var(&clock, "clock", "controller clock frequency")
	if err := fs.Parse(args); err != nil {
		return err
	}
	baseSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "base" {
			baseSet = true
		}
	})
	if *traceFile != "" && !*dryrun {
		return errors.New("-trace requires -n")
	}

	out := stdout
	if *console != "" {
		c, err := openConsole(*console)
		if err != nil {
			return err
		}
		defer c.Close()
		out = c
	}
	log.Printf("serial clock %v from %v", genqspi.BringupSCLK(clock), clock)

	if *dryrun {
		rec := genqspi.NewRecorder()
		genqspi.New(rec).Bringup(out)
		for _, s := range rec.Stores {
			log.Printf("%-7s %#08x", s.Reg, s.Value)
		}
		if *traceFile != "" {
			return writeTrace(*traceFile, *base, rec.Stores)
		}
		return nil
	}

	var (
		regs *genqspi.Mapping
		err  error
	)
	switch {
	case *uio != "":
		regs, err = openUIO(*uio)
	case baseSet:
		regs, err = mapPhys(*base)
	default:
		return errNoRegs
	}
	if err != nil {
		return err
	}
	brk := idle
	if *trap {
		brk = runtime.Breakpoint
	}
	genqspi.New(regs).Run(out, brk)
	return nil
}

func idle() {
	time.Sleep(time.Second)
}

func writeTrace(file string, base uint64, stores []genqspi.Store) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := trace.Encode(f, trace.New(base, stores)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
