package desmume

import (
	"errors"
	"fmt"
)

type StartFrom int

const (
	StartBlank StartFrom = iota
	StartSRAM
	StartSavestate
)

var ErrNoMovie = errors.New("no movie is active")

type Movie struct {
	lib *Library
}

func (m *Movie) Play(path string) error {
	if msg := m.lib.moviePlay(path); msg != "" {
		return fmt.Errorf("could not play movie %s: %s", path, msg)
	}
	return nil
}

// Record starts recording to path. sram names an SRAM save to start from and
// may be empty.
func (m *Movie) Record(path string, author string, from StartFrom, sram string) {
	m.lib.movieRecord(path, author, int32(from), sram)
}

func (m *Movie) Stop() {
	m.lib.movieStop()
}

func (m *Movie) Active() bool {
	return m.lib.movieActive() != 0
}

func (m *Movie) Recording() bool {
	return m.lib.movieRecording() != 0
}

func (m *Movie) Playing() bool {
	return m.lib.moviePlaying() != 0
}

func (m *Movie) Finished() bool {
	return m.lib.movieFinished() != 0
}

func (m *Movie) Length() (int, error) {
	if !m.Active() {
		return 0, ErrNoMovie
	}
	return int(m.lib.movieLength()), nil
}

func (m *Movie) Name() (string, error) {
	if !m.Active() {
		return "", ErrNoMovie
	}
	return m.lib.movieName(), nil
}

func (m *Movie) RerecordCount() (int, error) {
	if !m.Active() {
		return 0, ErrNoMovie
	}
	return int(m.lib.movieRerecords()), nil
}

func (m *Movie) SetRerecordCount(count int) error {
	if !m.Active() {
		return ErrNoMovie
	}
	m.lib.movieSetRerecord(int32(count))
	return nil
}

func (m *Movie) ReadOnly() (bool, error) {
	if !m.Active() {
		return false, ErrNoMovie
	}
	return m.lib.movieReadOnly() != 0, nil
}

func (m *Movie) SetReadOnly(readOnly bool) error {
	if !m.Active() {
		return ErrNoMovie
	}
	m.lib.movieSetReadOnly(cbool(readOnly))
	return nil
}
