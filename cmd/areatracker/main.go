// Command areatracker opens a map of polygon regions and lets the user link
// them by clicking.
//
//	areatracker [flags] [data-dir]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/phanxgames/areatracker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "areatracker:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load(".env")

	fs := pflag.NewFlagSet("areatracker", pflag.ContinueOnError)
	areatracker.RegisterFlags(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		if err := fs.Set("data-dir", fs.Arg(0)); err != nil {
			return err
		}
	}

	settings, err := areatracker.LoadSettings(fs)
	if err != nil {
		return err
	}
	log, err := areatracker.NewLogger(settings.LogLevel, settings.LogFile)
	if err != nil {
		return err
	}
	areatracker.SetLogger(log)

	res, err := areatracker.LoadDir(settings.DataDir)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		log.Warn(w)
	}

	s := areatracker.NewSession(res.Config, res.Regions, res.Palette)
	s.SetDebugMode(settings.Debug)
	s.ScreenshotDir = settings.ScreenshotDir

	if settings.Script != "" {
		data, err := os.ReadFile(settings.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := areatracker.LoadTestScript(data)
		if err != nil {
			return err
		}
		s.SetTestRunner(runner)
	}

	var notice []string
	for _, e := range res.Errors {
		notice = append(notice, e.Error())
	}
	notice = append(notice, res.Warnings...)

	return areatracker.Run(s, areatracker.RunConfig{
		Title:   "Area Tracker - " + filepath.Base(settings.DataDir),
		ShowFPS: settings.ShowFPS,
		Notice:  areatracker.NewNotice(notice, float32(settings.NoticeSeconds)),
	})
}
