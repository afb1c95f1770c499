/*
File: main.go
Version: 1.0.0
Description: kwextract entry point. Reads the malicious and benign URL corpora,
             prints the tokens over-represented in the malicious set.
*/

package main

import (
	"flag"
	"io"
	"os"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML configuration file")
	flag.Parse()

	os.Exit(run(*configPath, os.Stdout))
}

// run performs one extraction and returns the process exit status. The report
// is only written once both corpora have loaded.
func run(configPath string, stdout io.Writer) int {
	cfg := DefaultConfig()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			LogError("[CONFIG] %v", err)
			return 1
		}
		cfg = loaded
	}

	if err := InitLogger(cfg.Logging); err != nil {
		LogError("[CONFIG] Failed to initialize logger: %v", err)
		return 1
	}
	defer ShutdownLogger()

	LogInfo("[SYSTEM] Malicious corpus: %s", cfg.MaliciousPath())
	LogInfo("[SYSTEM] Benign corpus: %s", cfg.BenignPath())

	keywords, err := ExtractFromFiles(cfg)
	if err != nil {
		LogError("[CORPUS] %v", err)
		return exitCodeFor(err)
	}

	if err := WriteReport(stdout, keywords, cfg.Output.Format); err != nil {
		LogError("[OUTPUT] Failed to write report: %v", err)
		return 1
	}
	return 0
}
