package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"promptea-backend/internal/engine"
	"promptea-backend/internal/shared/config"
)

// promptcheck runs the analysis engine on a prompt from a file or stdin and
// prints the result as JSON. Useful for tuning heuristics without a server.
func main() {
	cfg := config.Load()

	promptPath := flag.String("prompt", "", "Path to prompt file (reads stdin when omitted)")
	target := flag.String("target", "gpt", "Target model: gpt, gemini, grok, claude, kimi, deepseek")
	lang := flag.String("lang", "es", "UI language: es or en")
	purpose := flag.String("purpose", "text", "Purpose: text, study, code, data, image, marketing")
	outPath := flag.String("out", "", "Path to write JSON output (optional)")
	showPrompt := flag.Bool("show-prompt", false, "Print the optimized prompt instead of JSON")
	flag.Parse()

	prompt, err := readPrompt(*promptPath)
	if err != nil {
		exitErr(err.Error())
	}
	if strings.TrimSpace(prompt) == "" {
		exitErr("prompt is empty")
	}

	eng := engine.New(cfg.EngineVersion)
	result := eng.Analyze(prompt, engine.Target(*target), engine.Lang(*lang), *purpose)

	if *showPrompt {
		fmt.Println(result.OptimizedPrompt)
		return
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("marshal result: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, append(data, '\n'), 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
		fmt.Fprintf(os.Stderr, "score %d, %d findings, wrote %s\n", result.Score, len(result.Findings), *outPath)
		return
	}

	fmt.Println(string(data))
}

func readPrompt(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %v", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt: %v", err)
	}
	return string(data), nil
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "error: "+msg)
	os.Exit(1)
}
