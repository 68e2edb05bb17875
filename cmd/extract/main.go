package main

import (
	"encoding/json"
	"flag"
	"os"

	"aroma-content-be/pkg/telegramexport"

	"github.com/fatih/color"
)

// Converts a Telegram channel export (result.json) into the flat JSON array
// of post texts the service loads at startup.
func main() {
	input := flag.String("in", "result.json", "path to the Telegram export JSON")
	output := flag.String("out", "aromakiss_texts.json", "path for the flat corpus JSON")
	flag.Parse()

	file, err := os.Open(*input)
	if err != nil {
		color.Red("Failed to open export: %v", err)
		os.Exit(1)
	}
	defer file.Close()

	export, err := telegramexport.Parse(file)
	if err != nil {
		color.Red("Failed to parse export: %v", err)
		os.Exit(1)
	}

	texts := export.Texts()
	data, err := json.MarshalIndent(texts, "", "  ")
	if err != nil {
		color.Red("Failed to encode corpus: %v", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		color.Red("Failed to write corpus: %v", err)
		os.Exit(1)
	}

	color.Green("Extracted %d posts from %q to %q", len(texts), export.Name, *output)
}
