package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/imtiyazakiwat/driverbench/internal/api"
	"github.com/imtiyazakiwat/driverbench/internal/utils"
	"github.com/spf13/pflag"
)

const defaultPrompt = "What is 2+2? Reply with just the number."

func main() {
	endpoint := pflag.StringP("endpoint", "u", api.DefaultEndpoint, "Drivers endpoint URL")
	origin := pflag.String("origin", api.DefaultOrigin, "Origin header sent with each request")
	token := pflag.StringP("token", "k", "", "Bearer token for the drivers endpoint")
	prompt := pflag.StringP("prompt", "p", defaultPrompt, "Prompt sent to every model")
	pairFlags := pflag.StringArray("pair", nil, `Model pair as "Name=claude-id|openrouter-id" (repeatable; defaults to the built-in list)`)
	timeout := pflag.Duration("timeout", 0, "Overall run timeout (0 = none)")
	output := pflag.StringP("output", "o", "text", "Output format: text, json or yaml")
	help := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *help {
		fmt.Printf("Usage of %s:\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(0)
	}

	if *token == "" {
		log.Fatalf("Missing bearer token: pass --token")
	}

	pairs := api.DefaultPairs
	if len(*pairFlags) > 0 {
		parsed, err := utils.ParseModelPairs(*pairFlags)
		if err != nil {
			log.Fatalf("Invalid model pairs: %v", err)
		}
		pairs = parsed
	}
	if len(pairs) == 0 {
		log.Fatalf("Empty model pair list")
	}

	comparison := Comparison{
		Endpoint: *endpoint,
		Origin:   *origin,
		Token:    *token,
		Prompt:   *prompt,
		Timeout:  *timeout,
		Pairs:    pairs,
		out:      os.Stdout,
	}

	ctx := context.Background()
	if comparison.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, comparison.Timeout)
		defer cancel()
	}

	switch *output {
	case "text":
		if err := comparison.runCli(ctx); err != nil {
			log.Fatalf("Comparison failed: %v", err)
		}
	case "json":
		result, err := comparison.run(ctx)
		if err != nil {
			log.Fatalf("Comparison failed: %v", err)
		}
		rendered, err := result.Json()
		if err != nil {
			log.Fatalf("Error rendering JSON: %v", err)
		}
		fmt.Println(rendered)
	case "yaml":
		result, err := comparison.run(ctx)
		if err != nil {
			log.Fatalf("Comparison failed: %v", err)
		}
		rendered, err := result.Yaml()
		if err != nil {
			log.Fatalf("Error rendering yaml: %v", err)
		}
		fmt.Println(rendered)
	default:
		log.Fatalf("Invalid output format %q (want text, json or yaml)", *output)
	}
}
