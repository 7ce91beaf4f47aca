package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"docsum/internal/adapter/model"
	"docsum/internal/domain"
	"docsum/internal/logger"
	"docsum/internal/port"
)

// ExtractUseCase runs named entity recognition over a whole document.
type ExtractUseCase struct {
	recognizer *model.Handle[port.Recognizer]
	log        logger.Logger
}

func NewExtractUseCase(recognizer *model.Handle[port.Recognizer], log logger.Logger) *ExtractUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ExtractUseCase{
		recognizer: recognizer,
		log:        log,
	}
}

// Extract calls the recognizer once and groups its spans by label. A
// recognizer that cannot be loaded or fails yields an unavailable set,
// which callers treat the same as finding nothing.
func (u *ExtractUseCase) Extract(ctx context.Context, text string) domain.EntitySet {
	if strings.TrimSpace(text) == "" {
		return domain.EntitySet{}
	}

	recognizer, err := u.recognizer.Get()
	if err != nil {
		return u.unavailable(err)
	}

	entities, err := recognizer.Recognize(ctx, text)
	if err != nil {
		if !errors.Is(err, port.ErrModelUnavailable) {
			u.log.Error("entity recognition failed", "model", recognizer.ModelName(), "err", err)
		}
		return u.unavailable(err)
	}

	groups := GroupEntities(entities)
	u.log.Debug("recognised entities", "spans", len(entities), "labels", len(groups))
	return domain.EntitySet{Groups: groups}
}

func (u *ExtractUseCase) unavailable(err error) domain.EntitySet {
	hint := port.HintFor(err)
	if errors.Is(err, port.ErrModelUnavailable) {
		u.log.Error(fmt.Sprintf("NER model '%s' not found.", u.recognizer.Name()), "err", err)
		if hint != "" {
			u.log.Error(hint)
		}
	}
	return domain.EntitySet{Unavailable: true, Hint: hint}
}

// GroupEntities buckets spans by label in first-seen label order. Blank
// spans are dropped, surrounding whitespace is trimmed, and each bucket is
// deduplicated and sorted by byte order.
func GroupEntities(entities []domain.Entity) []domain.EntityGroup {
	index := make(map[string]int)
	seen := make(map[string]map[string]bool)
	var groups []domain.EntityGroup

	for _, e := range entities {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			continue
		}

		i, ok := index[e.Label]
		if !ok {
			i = len(groups)
			index[e.Label] = i
			seen[e.Label] = make(map[string]bool)
			groups = append(groups, domain.EntityGroup{Label: e.Label})
		}
		if seen[e.Label][text] {
			continue
		}
		seen[e.Label][text] = true
		groups[i].Items = append(groups[i].Items, text)
	}

	for i := range groups {
		sort.Strings(groups[i].Items)
	}
	return groups
}
