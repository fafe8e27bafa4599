// bsnes-ui is the standalone desktop shell. It loads an SNES cartridge
// (from the command line or a file chooser), wires up an emulation core,
// and hands control to the shell's game loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sqweek/dialog"

	emucore "github.com/OpenEmu/BSNES-Core/api"
	"github.com/OpenEmu/BSNES-Core/romloader"
	"github.com/OpenEmu/BSNES-Core/standalone"
	"github.com/OpenEmu/BSNES-Core/testcore"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [rom-file]\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Supported cartridge formats: %s (plain, zip, gzip, 7z, rar)\n",
			strings.Join(romloader.SNESExtensions, " "))
		flag.PrintDefaults()
	}
	flag.Parse()

	romPath := flag.Arg(0)
	if romPath == "" {
		romPath = chooseROM()
	}
	if romPath == "" {
		log.Fatal("No ROM file selected")
	}

	rom, name, err := romloader.LoadCartridge(romPath)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", romPath, err)
	}
	log.Printf("Loaded %s (%d KB)", name, len(rom)/1024)

	core := testcore.New()
	if err := core.LoadROM(rom); err != nil {
		log.Fatalf("Failed to insert cartridge: %v", err)
	}
	core.Power()

	err = standalone.Run(standalone.RunConfig{
		Core:    core,
		System:  emucore.SNES(),
		ROMPath: romPath,
	})
	if err != nil {
		log.Fatal(err)
	}
}

// chooseROM opens a native file chooser filtered to cartridge formats.
// Returns "" if the user cancels.
func chooseROM() string {
	exts := make([]string, 0, len(romloader.SNESExtensions)+4)
	for _, e := range romloader.SNESExtensions {
		exts = append(exts, strings.TrimPrefix(e, "."))
	}
	exts = append(exts, "zip", "gz", "7z", "rar")

	path, err := dialog.File().
		Title("Open SNES ROM").
		Filter("SNES ROMs", exts...).
		Load()
	if err != nil {
		// dialog.ErrCancelled means the user closed the chooser
		return ""
	}
	return path
}
