package port

import "docsum/internal/domain"

// Presenter shows the stages of a run to the user as they complete.
type Presenter interface {
	NoContent()
	Original(text string)
	Summary(text string)
	Entities(set domain.EntitySet)
	Saved(path string)
	SaveFailed(err error)
}

// ResultWriter persists the summary and entities of a run.
type ResultWriter interface {
	Write(path, summary string, set domain.EntitySet) error
}
