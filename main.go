package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	sources := make(map[string]*WordSource)
	for code, lang := range cfg.Languages {
		source, err := LoadWordSource(lang.WordsFile, lang.HintsFile)
		if err != nil {
			log.Fatalf("load %s word list: %v", code, err)
		}
		log.Printf("Loaded %d %s words from %s", source.Len(), code, lang.WordsFile)
		sources[code] = source
	}
	if len(sources) == 0 {
		log.Fatal("no language word list configured")
	}

	ctx := context.Background()

	projectID := os.Getenv("GCP_PROJECT_ID")

	var gemini *GeminiClient
	if projectID != "" {
		gemini, err = NewGeminiClient(ctx, projectID, os.Getenv("GCP_REGION"))
		if err != nil {
			log.Fatalf("init Gemini: %v", err)
		}
		defer gemini.Close()
		log.Printf("Gemini client ready (project: %s), missing hints will be generated", projectID)
	} else {
		log.Println("GCP_PROJECT_ID not set, hint generation disabled")
	}

	srv := NewServer(NewStore(), sources, gemini, cfg)

	log.Printf("Server listening on http://localhost:%s", port)
	if err := http.ListenAndServe(":"+port, srv); err != nil {
		log.Fatal(err)
	}
}
