package main

import (
	"flag"
	"log"
	"os"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/experiment"
)

func main() {
	configPtr := flag.String("config", "", "Path to the JSON experiment configuration")
	flag.Parse()
	if *configPtr == "" {
		log.Fatal("a configuration file must be specified")
	}

	config, err := experiment.LoadConfig(*configPtr)
	if err != nil {
		log.Fatalf("cannot load experiment configuration: %v", err)
	}

	runner, err := experiment.NewRunner(config)
	if err != nil {
		log.Fatal(err)
	}

	rows, summaries, err := runner.Run()
	if err != nil {
		log.Fatalf("an error occurred during the experiment: %v", err)
	}

	if err := experiment.WriteCSV(config.OutputCSV, rows); err != nil {
		log.Fatal(err)
	}
	log.Printf("results written to %v", config.OutputCSV)

	experiment.PrintSummary(os.Stdout, summaries)
}
