package game

import (
	"fmt"
	"log"

	"github.com/murkland/desmume/desmume"
)

// PlayMovie replays a recorded input movie over the running ROM.
func (g *Game) PlayMovie(path string) error {
	if err := g.emu.Movie().Play(path); err != nil {
		return err
	}

	name, _ := g.emu.Movie().Name()
	length, _ := g.emu.Movie().Length()
	rerecords, _ := g.emu.Movie().RerecordCount()
	log.Printf("playing movie %q: %d frames, %d rerecords", name, length, rerecords)
	return nil
}

// RecordMovie records input to path, starting from a reset with blank SRAM.
func (g *Game) RecordMovie(path string, author string) {
	g.emu.Movie().Record(path, author, desmume.StartBlank, "")
	log.Printf("recording movie to %s", path)
}

func (g *Game) movieStatus() string {
	movie := g.emu.Movie()
	if !movie.Active() {
		return ""
	}

	length, _ := movie.Length()
	switch {
	case movie.Recording():
		return fmt.Sprintf("recording (%d frames)", length)
	case movie.Finished():
		return "finished"
	case movie.Playing():
		return fmt.Sprintf("playing (%d frames)", length)
	}
	return "active"
}

func (g *Game) stopMovie() {
	if !g.emu.Movie().Active() {
		return
	}
	g.emu.Movie().Stop()
	log.Printf("stopped movie")
}
