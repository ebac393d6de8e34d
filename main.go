package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Xuanwo/go-locale"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/murkland/desmume/config"
	"github.com/murkland/desmume/desmume"
	"github.com/murkland/desmume/game"
	"github.com/murkland/desmume/translations"
	"github.com/ncruces/zenity"
	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	logFile     = flag.String("log_file", "desmume.log", "file to log to")
	configPath  = flag.String("config_path", "desmume.toml", "path to config")
	romPath     = flag.String("rom_path", "", "path to rom to start immediately")
	libraryPath = flag.String("library_path", "", "path to libdesmume, overrides the config")
	moviePath   = flag.String("movie_path", "", "path to a movie to play back")
	recordPath  = flag.String("record_path", "", "path to record a movie to")
	movieAuthor = flag.String("movie_author", "", "author to store in recorded movies")
)

var version string

func loadOrCreateConfig(path string, lang language.Tag) config.Config {
	confF, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("failed to open config: %s", err)
		}

		log.Printf("config doesn't exist, making a new one at: %s", path)
		confF, err = os.Create(path)
		if err != nil {
			log.Fatalf("failed to open config: %s", err)
		}
		defer confF.Close()

		conf := config.Default()
		conf.Emulator.Language = translations.FirmwareLanguage(lang, conf.Emulator.Language)
		if err := config.Save(conf, confF); err != nil {
			log.Fatalf("failed to save config: %s", err)
		}
		return conf
	}
	defer confF.Close()

	conf, err := config.Load(confF)
	if err != nil {
		log.Fatalf("failed to open config: %s", err)
	}
	return conf
}

func selectROM(p *message.Printer) string {
	roms, err := os.ReadDir("roms")
	if err != nil {
		log.Fatalf("failed to open roms directory: %s", err)
	}

	options := map[string]string{}
	for _, dirent := range roms {
		if dirent.IsDir() || !strings.EqualFold(filepath.Ext(dirent.Name()), ".nds") {
			continue
		}
		options[strings.TrimSuffix(dirent.Name(), filepath.Ext(dirent.Name()))] = dirent.Name()
	}

	if len(options) == 0 {
		msg := p.Sprintf("NO_ROMS", "roms")
		zenity.Error(msg, zenity.Title("desmume"))
		log.Fatal(msg)
	}

	keys := slices.Sorted(maps.Keys(options))

	key, err := zenity.List(p.Sprintf("SELECT_ROM"), keys, zenity.Title("desmume"))
	if err != nil {
		log.Fatalf("failed to select game: %s", err)
	}

	return filepath.Join("roms", options[key])
}

func main() {
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			log.Fatalf("failed to open log file: %s", err)
		}
		defer f.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	lang, _ := locale.Detect()
	lang = message.MatchLanguage(lang.String())
	log.Printf("selected language: %s", lang)
	p := message.NewPrinter(lang)

	conf := loadOrCreateConfig(*configPath, lang)

	os.MkdirAll("roms", 0o700)

	log.Printf("config settings: %+v", conf)
	log.Printf("welcome to desmume %s", version)

	if *libraryPath != "" {
		conf.Library.Path = *libraryPath
	}

	lib, err := desmume.Load(conf.Library.Path)
	if err != nil {
		log.Fatalf("failed to load libdesmume: %s", err)
	}
	defer lib.Close()
	log.Printf("loaded libdesmume: %s", lib.Path())

	emu, err := desmume.New(lib)
	if err != nil {
		log.Fatalf("failed to start emulator: %s", err)
	}

	if *romPath == "" {
		*romPath = selectROM(p)
	}

	log.Printf("loading rom: %s", *romPath)

	scale := conf.Display.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(fmt.Sprintf("desmume - %s", filepath.Base(*romPath)))
	ebiten.SetWindowSize(desmume.ScreenWidth*scale, (desmume.ScreenHeightBoth+conf.Display.Gap)*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	g, err := game.New(conf, p, emu, *romPath)
	if err != nil {
		log.Fatalf("failed to start game: %s", err)
	}

	if *moviePath != "" {
		if err := g.PlayMovie(*moviePath); err != nil {
			log.Fatalf("failed to play movie: %s", err)
		}
	} else if *recordPath != "" {
		g.RecordMovie(*recordPath, *movieAuthor)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("failed to run game: %s", err)
	}

	g.Finish()
}
