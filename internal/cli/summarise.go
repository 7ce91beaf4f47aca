package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"docsum/internal/adapter/analyzer"
	"docsum/internal/adapter/fs"
	"docsum/internal/adapter/model"
	"docsum/internal/adapter/ner"
	"docsum/internal/adapter/report"
	"docsum/internal/adapter/summarizer"
	"docsum/internal/port"
	"docsum/internal/usecase"
)

func runSummarise(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	ctx := cmd.Context()

	if saveConfig != "" {
		if err := cfg.Save(saveConfig); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", saveConfig)
		return nil
	}

	osFs := afero.NewOsFs()

	// Models load on first use, so a run with no readable input never
	// touches a backend.
	summarizerModel := model.NewHandle(cfg.Summarizer.Model, func() (port.Summarizer, error) {
		return summarizer.New(ctx, cfg.Summarizer)
	})
	tokenizerModel := model.NewHandle(cfg.Summarizer.Tokenizer, func() (port.Tokenizer, error) {
		return analyzer.NewTokenizer(cfg.Summarizer.Tokenizer, cfg.Summarizer.Encoding)
	})
	recognizerModel := model.NewHandle(cfg.NER.Model, func() (port.Recognizer, error) {
		return ner.New(cfg.NER)
	})
	defer func() {
		if err := recognizerModel.Close(); err != nil {
			log.Warn("failed to release NER model", "err", err)
		}
	}()

	readUC := usecase.NewReadUseCase(fs.NewReader(osFs, cfg.Input.Encoding, cfg.Input.StripMarkdown), fs.NewExpander(osFs), log)
	summarizeUC := usecase.NewSummarizeUseCase(summarizerModel, tokenizerModel, cfg.Summarizer.ChunkTokens, port.SummarizeOptions{
		MaxTokens:     cfg.Summarizer.MaxTokens,
		MinTokens:     cfg.Summarizer.MinTokens,
		Deterministic: true,
	}, log.With("stage", "summarize"))
	summarizeUC.OnProgress(chunkProgress(os.Stderr))
	extractUC := usecase.NewExtractUseCase(recognizerModel, log.With("stage", "ner"))

	pipeline := usecase.NewPipelineUseCase(
		readUC,
		summarizeUC,
		extractUC,
		report.NewConsole(cmd.OutOrStdout(), cfg.Output.WrapWidth),
		report.NewFileWriter(osFs),
		cfg.Output.Suffix,
		log,
	)
	pipeline.Run(ctx, args)

	// Partial failures have already been reported and do not change the
	// exit status.
	return nil
}
