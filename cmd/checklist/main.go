// checklist is a debug utility: it fetches the configured keyword source
// (or a URL given as the first argument), parses it the way the bot does,
// and prints the resulting entries in order.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/moderato-bot/moderato/internal/biz/repo"
	"github.com/moderato-bot/moderato/internal/biz/usecase"
	"github.com/moderato-bot/moderato/internal/data"
)

func main() {
	_ = godotenv.Load()

	var source repo.KeywordSource
	switch {
	case len(os.Args) > 1:
		source = data.NewRemoteKeywordSource(os.Args[1])
	case os.Getenv("KEYWORD_LIST_URL") != "":
		source = data.NewRemoteKeywordSource(os.Getenv("KEYWORD_LIST_URL"))
	case os.Getenv("KEYWORD_LIST") != "":
		source = data.NewStaticKeywordSource(os.Getenv("KEYWORD_LIST"))
	default:
		log.Fatal("No keyword source: pass a URL or set KEYWORD_LIST_URL / KEYWORD_LIST")
	}

	raw, err := source.Fetch(context.Background())
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}

	list := usecase.ParseKeywordList(raw)
	fmt.Printf("%d entries:\n", len(list))
	for i, entry := range list {
		fmt.Printf("%3d  %s\n", i+1, entry)
	}
}
