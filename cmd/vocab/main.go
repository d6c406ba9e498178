package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"vocab/internal/config"
	"vocab/internal/dictionary"
	"vocab/internal/domain"
	"vocab/internal/extractor"
	"vocab/internal/normalizer"
	"vocab/internal/report"
	"vocab/internal/service"
	"vocab/internal/stopword"
	"vocab/internal/tokenizer"
)

func main() {
	_ = godotenv.Load()
	configureLogging()

	var (
		cfgPath       string
		lang          string
		top           int
		output        string
		stopwordsPath string
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/vocab/config.yaml if not provided)")
	flag.StringVar(&lang, "lang", "", "Language to analyze: chinese or english (overrides config)")
	flag.IntVar(&top, "top", 0, "Number of top words to include (overrides config)")
	flag.StringVar(&output, "output", "", "Output report file (overrides config)")
	flag.StringVar(&stopwordsPath, "stopwords", "", "Stopwords file, one word per line (overrides config)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: vocab [flags] file1.txt [file2.srt file3.docx ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if lang != "" {
		cfg.Language = lang
	}
	if top != 0 {
		cfg.Top = top
	}
	if output != "" {
		cfg.Output = output
	}
	if stopwordsPath != "" {
		cfg.Stopwords = stopwordsPath
	}
	if err := cfg.Finalize(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	language := domain.Language(cfg.Language)

	var stops stopword.Set
	if cfg.Stopwords != "" {
		stops = stopword.Load(cfg.Stopwords)
	} else {
		stops = stopword.Builtin(language)
	}
	custom := stopword.NewSet(cfg.CustomFilter...)

	// Assemble the language-specific stages
	var (
		norm   domain.Normalizer
		tok    domain.Tokenizer
		filter domain.TokenFilter
		pron   domain.Pronouncer
		writer domain.ReportWriter
	)
	switch language {
	case domain.Chinese:
		converter, err := normalizer.NewOpenCCConverter()
		if err != nil {
			log.Fatalf("chinese converter init failed: %v", err)
		}
		chTok, err := tokenizer.NewChinese(cfg.Tokenizer.DictPaths...)
		if err != nil {
			log.Fatalf("chinese tokenizer init failed: %v", err)
		}
		norm = normalizer.NewChinese(converter)
		tok = chTok
		filter = stopword.NewChineseFilter(stops, custom, stopword.NewSet(cfg.KeepSingle...))
		pron = report.NewPinyinPronouncer()
		writer = report.NewChinese(converter)
	case domain.English:
		norm = normalizer.NewEnglish()
		tok = tokenizer.NewEnglish(cfg.English.Stem)
		filter = stopword.NewEnglishFilter(stops, custom)
		pron = report.PhoneticPronouncer{}
		writer = report.NewEnglish()
	default:
		log.Fatalf("unknown language: %s", cfg.Language)
	}

	var enricher domain.Enricher
	if cfg.Dictionary.Disabled {
		enricher = dictionary.Disabled{}
	} else {
		enricher = dictionary.NewClient(dictionary.Config{
			BaseURL:   cfg.Dictionary.BaseURL,
			APIKeyEnv: cfg.Dictionary.APIKeyEnv,
			Timeout:   time.Duration(cfg.Dictionary.TimeoutSecs) * time.Second,
		}, language)
	}

	pipe := service.NewPipeline(extractor.New(), norm, tok, filter, enricher, pron, cfg.Top)
	result, err := pipe.Run(inputs)
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		log.Fatalf("cannot create output file: %v", err)
	}
	if err := writer.Write(out, result.Entries); err != nil {
		out.Close()
		log.Fatalf("failed to write report: %v", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}

	printSummary(os.Stdout, cfg.Output, result)
}

var logLevel = new(slog.LevelVar)

func configureLogging() {
	switch strings.ToUpper(os.Getenv("VOCAB_LOG_LEVEL")) {
	case "DEBUG":
		logLevel.Set(slog.LevelDebug)
	case "WARN":
		logLevel.Set(slog.LevelWarn)
	case "ERROR":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))
}
