package catalog

import (
	"errors"
	"fmt"
)

// ErrCatalogLoad is matched by every LoadError via errors.Is.
var ErrCatalogLoad = errors.New("catalog load failed")

// LoadError reports an unusable catalog. It is fatal: nothing can be matched without a catalog.
type LoadError struct {
	Source   string
	Expected string
	Found    string
	Cause    error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("loading catalog from %s: expected %s, found %s", e.Source, e.Expected, e.Found)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

func (e *LoadError) Is(target error) bool {
	return target == ErrCatalogLoad
}
