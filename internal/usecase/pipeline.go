package usecase

import (
	"context"

	"docsum/config"
	"docsum/internal/domain"
	"docsum/internal/logger"
	"docsum/internal/port"
)

// PipelineUseCase runs read, summarize, extract and save in sequence,
// presenting each stage as soon as it completes.
type PipelineUseCase struct {
	read      *ReadUseCase
	summarize *SummarizeUseCase
	extract   *ExtractUseCase
	presenter port.Presenter
	writer    port.ResultWriter
	suffix    string
	log       logger.Logger
}

// NewPipelineUseCase creates a new pipeline use case. The result file is
// named after the first argument with suffix appended to its stem.
func NewPipelineUseCase(
	read *ReadUseCase,
	summarize *SummarizeUseCase,
	extract *ExtractUseCase,
	presenter port.Presenter,
	writer port.ResultWriter,
	suffix string,
	log logger.Logger,
) *PipelineUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PipelineUseCase{
		read:      read,
		summarize: summarize,
		extract:   extract,
		presenter: presenter,
		writer:    writer,
		suffix:    suffix,
		log:       log,
	}
}

// Run processes args. Partial failures are reported through the presenter
// and recorded in the result; they never produce an error.
func (u *PipelineUseCase) Run(ctx context.Context, args []string) *domain.Result {
	result := &domain.Result{}

	result.Document, result.Failures = u.read.Read(args)
	if result.Document.Empty() {
		u.presenter.NoContent()
		return result
	}
	u.presenter.Original(result.Document.Text)

	result.Summary = u.summarize.Summarize(ctx, result.Document.Text)
	u.presenter.Summary(result.Summary.Text)

	result.Entities = u.extract.Extract(ctx, result.Document.Text)
	u.presenter.Entities(result.Entities)

	result.OutputPath = config.OutputPath(args[0], u.suffix)
	if err := u.writer.Write(result.OutputPath, result.Summary.Text, result.Entities); err != nil {
		result.SaveErr = err
		u.presenter.SaveFailed(err)
		return result
	}
	u.presenter.Saved(result.OutputPath)

	u.log.Debug("run complete",
		"sources", len(result.Document.Sources),
		"skipped", len(result.Failures),
		"chunks", result.Summary.Chunks,
		"failed_chunks", len(result.Summary.Failed),
		"labels", len(result.Entities.Groups))
	return result
}
