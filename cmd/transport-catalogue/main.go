package main

import (
	"bytes"
	"flag"
	"io"
	"log"
	"os"

	lib "github.com/theoremus-urban-solutions/transport-catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/gtfs"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
	"github.com/theoremus-urban-solutions/transport-catalogue/request"
)

func main() {
	mode := flag.String("mode", "batch", "batch|text|serve")
	configPath := flag.String("config", "", "config file (default: config.yml if present)")
	in := flag.String("in", "", "input document (default stdin)")
	out := flag.String("out", "", "output file (default stdout)")
	feedName := flag.String("feed", "", "feed name from config.feeds[] (serve)")
	gtfsSource := flag.String("gtfs", "", "GTFS zip URL or path (serve, overrides config)")
	baseSource := flag.String("base", "", "JSON base document URL or path (serve)")
	flag.Parse()

	if *mode == "serve" {
		internal.InitLogging()
	} else {
		internal.InitLoggingTo(os.Stderr)
	}
	if err := config.LoadAppConfig(*configPath); err != nil {
		log.Fatalf("config: %v", err)
	}

	switch *mode {
	case "batch", "text":
		r, closeIn := openInput(*in)
		defer closeIn()
		w, closeOut := openOutput(*out)
		defer closeOut()
		run := lib.ProcessJSON
		if *mode == "text" {
			run = lib.ProcessText
		}
		if err := run(r, w); err != nil {
			log.Fatalf("%s: %v", *mode, err)
		}
	case "serve":
		engine, err := loadEngine(newFetcher(), *feedName, *gtfsSource, *baseSource)
		if err != nil {
			log.Fatalf("serve: %v", err)
		}
		lib.StartServer(engine)
		lib.HandleGracefulShutdown()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

// loadEngine builds the served engine from a JSON base document or a GTFS feed
func loadEngine(f *fetcher, feedName, gtfsSource, baseSource string) (*lib.Engine, error) {
	if baseSource != "" {
		data, err := f.fetch(baseSource)
		if err != nil {
			return nil, err
		}
		doc, err := request.Decode(data)
		if err != nil {
			return nil, err
		}
		return lib.LoadDocument(doc)
	}

	feed := config.SelectFeed(feedName)
	if gtfsSource != "" {
		feed.Path = gtfsSource
	}
	data, err := f.fetch(feed.Path)
	if err != nil {
		return nil, err
	}
	cat, err := gtfs.LoadCatalogue(bytes.NewReader(data), int64(len(data)), feed.Options)
	if err != nil {
		return nil, err
	}
	return lib.NewEngine(cat, config.Config.Routing, config.Config.Render.Settings())
}

func openInput(path string) (io.Reader, func()) {
	if path == "" {
		return os.Stdin, func() {}
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	return f, func() { _ = f.Close() }
}

func openOutput(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Printf("close output: %v", err)
		}
	}
}
