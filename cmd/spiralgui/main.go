// Package main provides the entry point for the spiral inductor desktop app.
package main

import (
	"log"

	"spiralgen/internal/app"
	"spiralgen/internal/version"
	"spiralgen/ui/mainwindow"

	fyneapp "fyne.io/fyne/v2/app"
)

const appTitle = "Spiral Inductor Generator"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s %s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID("io.github.spiralgen")
	fyneApp.Settings().SetTheme(&app.SpiralTheme{})

	win := mainwindow.New(fyneApp, app.NewState())
	win.ShowAndRun()
}
