// Command slotcue answers a single utterance from the command line:
// it extracts preference slots, ranks the catalog, and prints the
// assistant's next clarifying question.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/reelkit/slotcue/internal/catalog"
	logpkg "github.com/reelkit/slotcue/internal/logger"
	assistuc "github.com/reelkit/slotcue/internal/usecase/assist"
)

func main() {
	_ = godotenv.Load()

	showPrompt := flag.Bool("prompt", false, "also print the assembled model prompt")
	verbose := flag.Bool("v", false, "debug logging (includes the prompt)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	input := flag.Arg(0)

	ctx := context.Background()
	if *verbose {
		logger, err := logpkg.NewLogger("dev", "debug")
		if err != nil {
			fmt.Fprintln(os.Stderr, "logger:", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		ctx = logpkg.ContextWithLogger(ctx, logger.With(zap.String("component", "cli")))
	}

	svc := assistuc.New(catalog.Default())
	resp := svc.Respond(ctx, input)

	if *showPrompt {
		fmt.Println(resp.Prompt)
	}

	fmt.Println()
	fmt.Println("User:", input)
	fmt.Println("Assistant:", resp.Question)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: slotcue [flags] "<your query here>"`)
	flag.PrintDefaults()
}
