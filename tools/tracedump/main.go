package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/murkland/desmume/memory"
	"github.com/murkland/desmume/trace"
)

var (
	dump = flag.Bool("dump", false, "read a memory dump instead of a trace")
	kind = flag.String("kind", "", "only print events of this kind (write, read, exec)")
)

func main() {
	flag.Parse()

	name := flag.Arg(0)
	f, err := os.Open(name)
	if err != nil {
		log.Fatalf("failed to open file: %s", err)
	}
	defer f.Close()

	if *dump {
		d, err := trace.ReadDump(f)
		if err != nil {
			log.Fatalf("failed to read dump: %s", err)
		}

		fmt.Fprintf(os.Stdout, "start: %08x, size: %d\n", d.Start, len(d.Data))
		fmt.Fprint(os.Stdout, hex.Dump(d.Data))
		return
	}

	tr, err := trace.Unmarshal(f)
	if err != nil {
		log.Fatalf("failed to read trace: %s", err)
	}

	fmt.Fprintf(os.Stdout, "rom: %s\n", tr.ROM)

	counts := map[memory.WatchKind]int{}
	for _, ev := range tr.Events {
		counts[ev.Kind]++
		if *kind != "" && ev.Kind.String() != *kind {
			continue
		}
		fmt.Fprintln(os.Stdout, ev)
	}

	fmt.Fprintf(os.Stdout, "%d events: %d writes, %d reads, %d execs\n", len(tr.Events), counts[memory.WatchWrite], counts[memory.WatchRead], counts[memory.WatchExec])
}
