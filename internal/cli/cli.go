package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"hanscan/internal/cache"
	"hanscan/internal/config"
	"hanscan/internal/extract"
	"hanscan/internal/mapping"
	"hanscan/internal/phrase"
	"hanscan/internal/translate"
	"hanscan/internal/walker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "hanscan",
		Short: "Extract Chinese UI strings from JS/TS sources into a translation mapping",
		Long: `hanscan walks a JavaScript/TypeScript codebase, extracts embedded Chinese
UI strings, and generates an ordered phrase-to-translation JSON mapping.`,
	}

	rootCmd.AddCommand(scanCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type scanFlags struct {
	strategy  string
	translate bool
	provider  string
	output    string
	useCache  bool

	console     bool
	comments    bool
	jsx         bool
	enumValues  bool
	enumKeys    bool
	identifiers bool
	properties  bool
}

func scanCmd() *cobra.Command {
	var flags scanFlags

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Scan sources and write the phrase-to-translation mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0], flags)
		},
	}

	defaults := extract.DefaultOptions()
	cmd.Flags().StringVar(&flags.strategy, "strategy", "tree", "Extraction strategy: tree or pattern")
	cmd.Flags().BoolVar(&flags.translate, "translate", false, "Translate phrases instead of emitting pending markers")
	cmd.Flags().StringVar(&flags.provider, "provider", "", "Translation provider: google, baidu, or openai (default from env)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "translations.json", "Output path for the mapping artifact")
	cmd.Flags().BoolVar(&flags.useCache, "cache", true, "Reuse translations from the persistent translation memory")
	cmd.Flags().BoolVar(&flags.console, "console", defaults.ConsoleArgs, "Extract from console call arguments")
	cmd.Flags().BoolVar(&flags.comments, "comments", defaults.Comments, "Extract from comments")
	cmd.Flags().BoolVar(&flags.jsx, "jsx", defaults.JSXText, "Extract JSX text nodes")
	cmd.Flags().BoolVar(&flags.enumValues, "enum-values", defaults.EnumValues, "Extract enum member values")
	cmd.Flags().BoolVar(&flags.enumKeys, "enum-keys", defaults.EnumKeys, "Extract enum member names")
	cmd.Flags().BoolVar(&flags.identifiers, "identifiers", defaults.Identifiers, "Extract Han identifiers")
	cmd.Flags().BoolVar(&flags.properties, "properties", defaults.Properties, "Extract Han property names")

	return cmd
}

// runScan handles the `scan` command: discovery, extraction, dedup, mapping
// generation, artifact write, report.
func runScan(root string, flags scanFlags) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	if flags.provider != "" {
		cfg.Provider = flags.provider
	}

	inner, err := newExtractor(flags.strategy)
	if err != nil {
		return err
	}

	paths, err := walker.Walk(root)
	if err != nil {
		return fmt.Errorf("discover source files: %w", err)
	}

	opts := extract.Options{
		ConsoleArgs: flags.console,
		Comments:    flags.comments,
		JSXText:     flags.jsx,
		EnumValues:  flags.enumValues,
		EnumKeys:    flags.enumKeys,
		Identifiers: flags.identifiers,
		Properties:  flags.properties,
	}

	var (
		phrases    []string
		candidates int
		scanned    int
		skipped    int
	)

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		found, err := scanFile(ctx, inner, path, opts)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Skipping file")
			skipped++
			continue
		}
		scanned++
		candidates += len(found)
		phrases = append(phrases, found...)
	}

	unique := dedupe(flags.strategy, phrases)
	log.Info().
		Int("files", scanned).
		Int("candidates", candidates).
		Int("unique", len(unique)).
		Msg("Extraction complete")

	svc, memory, err := translationDeps(cfg, flags)
	if err != nil {
		return err
	}
	if memory != nil {
		defer memory.Close()
	}

	gen := mapping.NewGenerator(svc, memory)
	m, stats := gen.Generate(ctx, unique, flags.translate)

	if err := m.WriteFile(flags.output); err != nil {
		return err
	}

	printReport(os.Stdout, report{
		root:       root,
		strategy:   inner.Name(),
		files:      scanned,
		skipped:    skipped,
		candidates: candidates,
		unique:     len(unique),
		stats:      stats,
		output:     flags.output,
	})

	return nil
}

// scanFile reads one source file and runs the extractor on it. Vue
// single-file components are unwrapped first.
func scanFile(ctx context.Context, inner extract.Extractor, path string, opts extract.Options) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	ex := inner
	if strings.EqualFold(filepath.Ext(path), ".vue") {
		ex = extract.NewVueExtractor(inner)
	}
	return ex.Extract(ctx, extract.SourceUnit{Path: path, Content: content}, opts)
}

func newExtractor(strategy string) (extract.Extractor, error) {
	switch strategy {
	case "tree", "":
		return extract.NewTreeExtractor(), nil
	case "pattern":
		return extract.NewPatternExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown extraction strategy %q", strategy)
	}
}

// dedupe applies the policy matched to the strategy: the pattern scan
// over-collects punctuation variants, so its collisions are resolved by
// quality score; tree extraction is precise enough that the first
// occurrence wins.
func dedupe(strategy string, phrases []string) []string {
	if strategy == "pattern" {
		return phrase.Dedupe(phrases)
	}
	return phrase.DedupeFirstWins(phrases)
}

// translationDeps builds the provider and translation memory for a
// translating run. A broken memory backend degrades to provider-only.
func translationDeps(cfg *config.Config, flags scanFlags) (translate.Service, *cache.TranslationMemory, error) {
	if !flags.translate {
		return nil, nil, nil
	}

	svc, err := translate.New(cfg.Provider, translate.Config{
		SourceLang:    cfg.SourceLang,
		TargetLang:    cfg.TargetLang,
		BatchSize:     cfg.BatchSize,
		BatchDelay:    cfg.BatchDelay,
		MaxConcurrent: cfg.MaxConcurrent,
		BaiduAppID:    cfg.BaiduAppID,
		BaiduSecret:   cfg.BaiduSecret,
		OpenAIKey:     cfg.OpenAIKey,
		OpenAIModel:   cfg.OpenAIModel,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("configure provider: %w", err)
	}

	if !flags.useCache {
		return svc, nil, nil
	}

	memory, err := cache.Open(cache.Config{
		Backend:  cfg.CacheBackend,
		Path:     cfg.CachePath,
		RedisURL: cfg.RedisURL,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Translation memory unavailable, continuing without it")
		return svc, nil, nil
	}
	return svc, memory, nil
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}
