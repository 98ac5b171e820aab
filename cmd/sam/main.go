package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ravimishra07/project-sam/internal/config"
	"github.com/ravimishra07/project-sam/internal/embedder"
	"github.com/ravimishra07/project-sam/internal/export"
	"github.com/ravimishra07/project-sam/internal/index"
	"github.com/ravimishra07/project-sam/internal/logging"
	"github.com/ravimishra07/project-sam/internal/logstore"
	"github.com/ravimishra07/project-sam/internal/normalize"
	"github.com/ravimishra07/project-sam/pkg/journal"
)

const usage = `usage: sam <command>

commands:
  clean              normalize raw daily entries into canonical form
  embed              rebuild the embedding index from canonical entries
  export             write the chat-format fine-tuning corpus
  query <question>   answer one question and exit (vector retrieval)
  reflect <question> answer one question via date/mood/keyword routing
  search <keyword>   list entries matching a keyword
  ask                interactive question loop
`

func main() {
	cfg := config.Load()
	logging.Init(logging.ParseLevel(cfg.LogLevel))

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Cancel in-flight work on Ctrl-C; batch runs write their output in a
	// single pass after workers finish, so interruption leaves no partial
	// files behind.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(os.Stderr, "\nreceived %v, shutting down...\n", sig)
		cancel()
	}()

	switch os.Args[1] {
	case "clean":
		runClean(cfg)
	case "embed":
		runEmbed(ctx, cfg)
	case "export":
		runExport(cfg)
	case "query":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: sam query <question>")
			os.Exit(2)
		}
		runQuery(ctx, strings.Join(os.Args[2:], " "))
	case "reflect":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: sam reflect <question>")
			os.Exit(2)
		}
		runReflect(ctx, strings.Join(os.Args[2:], " "))
	case "search":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: sam search <keyword>")
			os.Exit(2)
		}
		runSearch(cfg, strings.Join(os.Args[2:], " "))
	case "ask":
		runAsk(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runClean(cfg config.Config) {
	n := normalize.New(cfg.Paths.RawDir, cfg.Paths.CleanDir, cfg.Paths.PinnedYear)
	rep, err := n.Run()
	if err != nil {
		slog.Error("normalization failed", "error", err)
		os.Exit(1)
	}
	slog.Info("normalization complete",
		"written", rep.Written, "skipped", rep.Skipped, "removed", rep.Removed)
}

func runEmbed(ctx context.Context, cfg config.Config) {
	emb, err := embedder.New(cfg.Embedder)
	if err != nil {
		slog.Error("could not create embedder", "error", err)
		os.Exit(1)
	}
	defer emb.Close()

	if err := embedder.Preflight(ctx, emb); err != nil {
		slog.Error("embedding backend unavailable", "host", cfg.Embedder.Host, "error", err)
		os.Exit(1)
	}

	b := index.NewBuilder(cfg.Paths.CleanDir, cfg.Paths.IndexFile, cfg.Embedder.Workers, emb)
	n, err := b.Build(ctx)
	if err != nil {
		slog.Error("index build failed", "error", err)
		os.Exit(1)
	}
	slog.Info("index rebuilt", "records", n, "file", cfg.Paths.IndexFile)
}

func runExport(cfg config.Config) {
	n, err := export.WriteChatCorpus(cfg.Paths.CleanDir, "cleaned_chat_format.jsonl")
	if err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
	slog.Info("chat corpus written", "samples", n)
}

func runReflect(ctx context.Context, question string) {
	j, err := journal.New()
	if err != nil {
		slog.Error("could not open journal", "error", err)
		os.Exit(1)
	}
	defer j.Close()

	fmt.Println(j.Reflect(ctx, question))
}

func runSearch(cfg config.Config, keyword string) {
	store, err := logstore.Open(cfg.Paths.CleanDir)
	if err != nil {
		slog.Error("could not open log store", "error", err)
		os.Exit(1)
	}

	hits := store.SearchKeyword(keyword)
	if len(hits) == 0 {
		fmt.Println("No matching logs.")
		return
	}
	for _, h := range hits {
		fmt.Printf("%s\t%s\n", h.ID, h.Entry.Summary)
	}
}

func runQuery(ctx context.Context, question string) {
	j, err := journal.New()
	if err != nil {
		slog.Error("could not open journal", "error", err)
		os.Exit(1)
	}
	defer j.Close()

	answer, err := j.Ask(ctx, question)
	if err != nil {
		slog.Error("query failed", "error", err)
		os.Exit(1)
	}
	fmt.Println(answer)
}

func runAsk(ctx context.Context) {
	j, err := journal.New()
	if err != nil {
		slog.Error("could not open journal", "error", err)
		os.Exit(1)
	}
	defer j.Close()

	fmt.Println("Personal Reflection Assistant")
	fmt.Println("Ask about your daily logs. quit/exit/bye to leave, /debug <q> to see the prompt.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit", "bye":
			fmt.Println("Goodbye")
			return
		}

		if q, ok := strings.CutPrefix(line, "/debug "); ok {
			p, err := j.DebugPrompt(ctx, strings.TrimSpace(q))
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println(p)
			continue
		}

		answer, err := j.Ask(ctx, line)
		if err != nil {
			// Embedding failures are per-question; the loop carries on.
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Println(answer)
	}
}
