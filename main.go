package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tmaran/gridshade/levels"
)

func main() {
	levelsPath := flag.String("levels", "", "path to an external level set YAML (default: embedded set)")
	level := flag.String("level", "", "starting level: name or 1-based number")
	watch := flag.Bool("watch", false, "hot-reload the -levels file on change")
	debug := flag.Bool("debug", false, "show the debug HUD")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	var (
		lvls []levels.Level
		err  error
	)
	if *levelsPath != "" {
		lvls, err = levels.Load(*levelsPath)
	} else {
		lvls, err = levels.Default()
	}
	if err != nil {
		log.Fatal(err)
	}

	start, err := findLevel(lvls, *level)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *levels.Watcher
	if *watch {
		if *levelsPath == "" {
			log.Fatal("-watch requires -levels")
		}
		watcher, err = levels.Watch(*levelsPath)
		if err != nil {
			log.Fatal(err)
		}
		defer watcher.Close()
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("gridshade")

	if err := ebiten.RunGame(NewGame(lvls, start, *debug, watcher)); err != nil {
		log.Fatal(err)
	}
}

// findLevel resolves the -level flag against the loaded set: empty means
// the first level, a number is 1-based, anything else matches by name.
func findLevel(lvls []levels.Level, sel string) (int, error) {
	if sel == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(sel); err == nil {
		if n < 1 || n > len(lvls) {
			return 0, &levelNotFoundError{sel: sel}
		}
		return n - 1, nil
	}
	for i, l := range lvls {
		if l.Name == sel {
			return i, nil
		}
	}
	return 0, &levelNotFoundError{sel: sel}
}

type levelNotFoundError struct {
	sel string
}

func (e *levelNotFoundError) Error() string {
	return "no such level: " + e.sel
}
