package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/kpauljoseph/pdfstat/internal/config"
	"github.com/kpauljoseph/pdfstat/internal/paper"
	"github.com/kpauljoseph/pdfstat/internal/pdf"
	"github.com/kpauljoseph/pdfstat/pkg/logger"
)

func main() {
	pdfPath := flag.String("file", "", "Path to PDF file")
	configPath := flag.String("config", "pdfstat.yaml", "path to config file")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Please provide a PDF file path using -file flag")
		os.Exit(1)
	}

	log := logger.New(logger.WithPrefix("[pagesizes] "))
	log.SetVerbose(*verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Error loading config: %v", err)
	}
	classifier, err := cfg.Classifier()
	if err != nil {
		log.Fatal("Error in config: %v", err)
	}

	api.DisableConfigDir()

	fmt.Printf("Analyzing PDF: %s\n", *pdfPath)

	doc, err := pdf.NewFitzOpener(cfg.RenderDPI, log).Open(*pdfPath)
	if err != nil {
		fmt.Printf("Error opening PDF: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	printPageSizes(os.Stdout, doc, classifier)
}

func printPageSizes(w io.Writer, doc pdf.Document, classifier *paper.Classifier) {
	for i := 0; i < doc.NumPage(); i++ {
		fmt.Fprintf(w, "\nPage %d:\n", i+1)

		width, height, err := doc.PageSize(i)
		if err != nil {
			fmt.Fprintf(w, "Error getting page dimensions: %v\n", err)
			continue
		}

		size := paper.PointsToMM(width, height)
		fmt.Fprintf(w, "Dimensions (Width x Height): %.3f x %.3f points\n", width, height)
		fmt.Fprintf(w, "Dimensions (Width x Height): %.1f x %.1f mm\n", size.Width, size.Height)
		fmt.Fprintf(w, "Paper format: %s\n", classifier.Classify(size))
	}
}
