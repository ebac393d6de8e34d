package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/murkland/desmume/config"
	"github.com/murkland/desmume/desmume"
	"github.com/murkland/desmume/memory"
	"github.com/murkland/desmume/trace"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

func main() {
	app := cli.NewApp()
	app.Name = "dswatch"
	app.Usage = "run a rom headless and trace memory watchpoints"
	app.UsageText = "dswatch [options] <rom>"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config_path",
			Usage: "path to config",
		},
		cli.StringFlag{
			Name:  "library_path",
			Usage: "path to libdesmume, overrides the config",
		},
		cli.StringSliceFlag{
			Name:  "write",
			Usage: "watch writes at address[:size], hex",
		},
		cli.StringSliceFlag{
			Name:  "read",
			Usage: "watch reads at address[:size], hex",
		},
		cli.StringSliceFlag{
			Name:  "exec",
			Usage: "watch execution at address[:size], hex",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "number of frames to run",
			Value: 600,
		},
		cli.StringFlag{
			Name:  "trace",
			Usage: "file to write the trace to",
			Value: "watch.dswt",
		},
		cli.StringFlag{
			Name:  "dump",
			Usage: "dump memory start:end, hex, once all frames ran",
		},
		cli.StringFlag{
			Name:  "dump_path",
			Usage: "file to write the memory dump to",
			Value: "memory.dsmd",
		},
		cli.StringSliceFlag{
			Name:  "string",
			Usage: "print the string at address, hex, once all frames ran",
		},
		cli.BoolFlag{
			Name:  "registers",
			Usage: "print cpu registers once all frames ran",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("failed to run: %s", err)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return config.Config{}, err
	}
	defer f.Close()

	return config.Load(f)
}

func parseWatches(c *cli.Context) ([]watchArg, error) {
	var watches []watchArg
	for kind, name := range map[memory.WatchKind]string{
		memory.WatchWrite: "write",
		memory.WatchRead:  "read",
		memory.WatchExec:  "exec",
	} {
		for _, s := range c.StringSlice(name) {
			w, err := parseWatch(kind, s)
			if err != nil {
				return nil, err
			}
			watches = append(watches, w)
		}
	}
	return watches, nil
}

func run(c *cli.Context) error {
	romPath := c.Args().First()
	if romPath == "" {
		cli.ShowAppHelp(c)
		return errors.New("no rom given")
	}

	conf, err := loadConfig(c.String("config_path"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	libraryPath := conf.Library.Path
	if c.String("library_path") != "" {
		libraryPath = c.String("library_path")
	}

	watches, err := parseWatches(c)
	if err != nil {
		return err
	}

	var dumpStart, dumpEnd uint32
	if c.String("dump") != "" {
		dumpStart, dumpEnd, err = parseRange(c.String("dump"))
		if err != nil {
			return err
		}
	}

	var stringAddrs []uint32
	for _, s := range c.StringSlice("string") {
		addr, err := parseUint32(s)
		if err != nil {
			return fmt.Errorf("bad string address %q: %w", s, err)
		}
		stringAddrs = append(stringAddrs, addr)
	}

	enc, err := conf.Memory.StringCodec.Encoding()
	if err != nil {
		return err
	}

	tw, err := trace.Create(c.String("trace"), filepath.Base(romPath))
	if err != nil {
		return fmt.Errorf("failed to create trace: %w", err)
	}
	defer tw.Close()

	events := make(chan trace.Event, 1024)
	frames := c.Int("frames")

	errg, ctx := errgroup.WithContext(context.Background())

	errg.Go(func() error {
		defer close(events)

		// Keep every call into the core on one OS thread.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		lib, err := desmume.Load(libraryPath)
		if err != nil {
			return err
		}
		defer lib.Close()

		emu, err := desmume.New(lib)
		if err != nil {
			return err
		}
		defer emu.Close()

		emu.SetLanguage(conf.Emulator.Language)
		emu.SetSaveType(conf.Emulator.SaveType)
		emu.SetVolume(0)

		if err := emu.Open(romPath, true); err != nil {
			return err
		}

		mem := emu.Memory()
		mem.Strings.MaxLen = conf.Memory.StringMaxLen

		var frame uint32
		for _, w := range watches {
			w := w
			mem.Watchpoints.Set(w.kind, w.address, func(address uint32, size int) {
				ev := trace.Event{
					Frame:   frame,
					Kind:    w.kind,
					Address: address,
					Size:    uint8(size),
				}
				if v, err := mem.Codec().ReadScalar(address, memory.Size(size), false); err == nil {
					ev.Value = uint32(v)
				}
				select {
				case events <- ev:
				case <-ctx.Done():
				}
			}, w.size)
			log.Printf("watching %s at %08x/%d", w.kind, w.address, w.size)
		}

		for ; int(frame) < frames; frame++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			emu.Cycle(false)
		}
		mem.Watchpoints.Clear()

		log.Printf("ran %d frames", frames)

		if c.Bool("registers") {
			printRegisters(mem)
		}

		for _, addr := range stringAddrs {
			s, err := mem.ReadString(addr, enc)
			if err != nil {
				log.Printf("failed to read string at %08x: %s", addr, err)
				continue
			}
			fmt.Fprintf(os.Stdout, "%08x: %q\n", addr, s)
		}

		if dumpEnd > dumpStart {
			if err := writeDump(c.String("dump_path"), mem, dumpStart, dumpEnd); err != nil {
				return fmt.Errorf("failed to write dump: %w", err)
			}
			log.Printf("dumped %08x:%08x to %s", dumpStart, dumpEnd, c.String("dump_path"))
		}

		return nil
	})

	errg.Go(func() error {
		n := 0
		for ev := range events {
			if err := tw.Write(ev); err != nil {
				return err
			}
			n++
		}
		log.Printf("traced %d events", n)
		return tw.Flush()
	})

	return errg.Wait()
}

func printRegisters(mem *memory.Memory) {
	for _, regs := range []*memory.Registers{mem.ARM9, mem.ARM7} {
		for slot := 0; slot < memory.NumRegisters; slot++ {
			v, err := regs.Get(slot)
			if err != nil {
				continue
			}
			fmt.Fprintf(os.Stdout, "%sr%d = %08x\n", regs.Prefix(), slot, v)
		}
		fmt.Fprintf(os.Stdout, "%scpsr = %08x\n", regs.Prefix(), regs.CPSR())
	}
}

func writeDump(path string, mem *memory.Memory, start uint32, end uint32) error {
	res, err := mem.Codec().ReadRange(start, end, memory.Byte, false)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return trace.WriteDump(f, trace.Dump{Start: start, Data: res.Bytes()})
}
