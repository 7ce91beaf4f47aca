package port

import (
	"context"

	"docsum/internal/domain"
)

// Recognizer runs named-entity recognition over a text.
type Recognizer interface {
	// Recognize returns the spans found in text, in document order.
	Recognize(ctx context.Context, text string) ([]domain.Entity, error)

	// ModelName returns the name of the NER model.
	ModelName() string
}
