package ner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"docsum/internal/domain"
	"docsum/internal/port"
)

// HugotRecognizer runs an exported ONNX token-classification model
// in-process with the pure Go hugot backend.
type HugotRecognizer struct {
	modelPath string
	session   *hugot.Session
	pipeline  *pipelines.TokenClassificationPipeline
}

// NewHugotRecognizer loads the model in modelPath. A missing model directory
// is reported as port.ErrModelUnavailable along with download instructions.
func NewHugotRecognizer(modelPath, modelName string) (*HugotRecognizer, error) {
	if modelName == "" {
		modelName = filepath.Base(modelPath)
	}
	hint := fmt.Sprintf("Please run: hugot download %s -o %s", modelName, filepath.Dir(modelPath))

	info, err := os.Stat(modelPath)
	if err != nil {
		return nil, port.Unavailable(modelName, hint, err)
	}
	if !info.IsDir() {
		return nil, port.Unavailable(modelName, hint, fmt.Errorf("%s is not a model directory", modelPath))
	}

	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("creating hugot session: %w", err)
	}

	pipeline, err := hugot.NewPipeline(session, hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "ner:" + modelPath,
	})
	if err != nil {
		_ = session.Destroy()
		return nil, port.Unavailable(modelName, hint, fmt.Errorf("creating token classification pipeline: %w", err))
	}
	// Group adjacent word pieces into whole entities (must be uppercase).
	pipeline.AggregationStrategy = "SIMPLE"

	return &HugotRecognizer{
		modelPath: modelPath,
		session:   session,
		pipeline:  pipeline,
	}, nil
}

func (r *HugotRecognizer) Recognize(_ context.Context, text string) ([]domain.Entity, error) {
	output, err := r.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("running token classification: %w", err)
	}
	if len(output.Entities) == 0 {
		return nil, nil
	}

	return hugotEntities(text, output.Entities[0]), nil
}

// hugotEntities converts aggregated pipeline output. Hugot reports byte
// offsets into text.
func hugotEntities(text string, found []pipelines.Entity) []domain.Entity {
	entities := make([]domain.Entity, 0, len(found))
	for _, e := range found {
		surface := sliceBytes(text, int(e.Start), int(e.End))
		if surface == "" {
			surface = e.Word
		}
		label := strings.TrimPrefix(strings.TrimPrefix(e.Entity, "B-"), "I-")
		entities = append(entities, domain.Entity{Label: label, Text: surface})
	}
	return entities
}

func (r *HugotRecognizer) ModelName() string {
	return filepath.Base(r.modelPath)
}

// Close releases the ONNX session.
func (r *HugotRecognizer) Close() error {
	if r.session == nil {
		return nil
	}
	err := r.session.Destroy()
	r.session = nil
	if err != nil {
		return errors.Join(errors.New("destroying hugot session"), err)
	}
	return nil
}
