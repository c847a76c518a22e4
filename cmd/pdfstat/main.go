package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/kpauljoseph/pdfstat/internal/analyzer"
	"github.com/kpauljoseph/pdfstat/internal/colordetect"
	"github.com/kpauljoseph/pdfstat/internal/config"
	"github.com/kpauljoseph/pdfstat/internal/input"
	"github.com/kpauljoseph/pdfstat/internal/pdf"
	"github.com/kpauljoseph/pdfstat/pkg/logger"
	"github.com/kpauljoseph/pdfstat/pkg/version"
)

func main() {
	configPath := flag.String("config", "pdfstat.yaml", "path to config file")
	outputFormat := flag.String("format", "", "report format: text or json (overrides config)")
	listPages := flag.Bool("pages", false, "list the classification of every page instead of the summary")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: pdfstat [flags] file.pdf\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Print(version.GetDetailedVersionInfo())
		return
	}

	log := logger.New(logger.WithPrefix("[pdfstat] "))
	log.SetVerbose(*verbose)
	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Error loading config: %v", err)
	}
	if *outputFormat != "" {
		cfg.OutputFormat = *outputFormat
	}

	classifier, err := cfg.Classifier()
	if err != nil {
		log.Fatal("Error in config: %v", err)
	}

	path, err := input.Resolve(flag.Arg(0))
	if err != nil {
		log.Fatal("PDF analysis failed: %v", err)
	}

	api.DisableConfigDir()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := analyzer.New(
		pdf.NewFitzOpener(cfg.RenderDPI, log),
		classifier,
		colordetect.NewDetector(log),
		log,
	)

	if *listPages {
		pages, err := a.Classify(ctx, path)
		if err != nil {
			log.Fatal("PDF analysis failed: %v", err)
		}
		if cfg.OutputFormat == config.OutputJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(pages); err != nil {
				log.Fatal("Error writing output: %v", err)
			}
			return
		}
		for _, p := range pages {
			kind := "monochrome"
			if p.IsColor {
				kind = "color"
			}
			fmt.Printf("Page %d: %.1f x %.1f mm, %s, %s\n", p.PageNum, p.Size.Width, p.Size.Height, p.Format, kind)
		}
		return
	}

	rep, err := a.Analyze(ctx, path)
	if err != nil {
		log.Fatal("PDF analysis failed: %v", err)
	}

	switch cfg.OutputFormat {
	case config.OutputJSON:
		err = rep.WriteJSON(os.Stdout)
	case config.OutputText:
		err = rep.WriteText(os.Stdout)
	default:
		log.Fatal("Unknown output format: %s", cfg.OutputFormat)
	}
	if err != nil {
		log.Fatal("Error writing output: %v", err)
	}
}
