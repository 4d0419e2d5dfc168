package parliament

import (
	"errors"
	"strings"
)

// Sentinel errors returned (wrapped) by FetchEntity and FetchInterests.
var (
	ErrNotFound  = errors.New("not found")
	ErrTransport = errors.New("transport failure")
)

const (
	notFoundFallback = "MP not found. Try searching by constituency name or MP name."
	transportMessage = "Network error. Please try again."
)

// SearchOutcome is the tagged result of a search. It is one of Found,
// PartialMatch, NotFound or TransportError.
type SearchOutcome interface {
	isSearchOutcome()
}

// Found means the query resolved to an MP with a local profile.
type Found struct {
	MemberID int64
}

// PartialMatch means the MP exists upstream but has no local record.
type PartialMatch struct {
	Name         string
	Party        string
	Constituency string
}

// NotFound is a domain-level miss.
type NotFound struct {
	Message string
}

// TransportError covers network and parsing failures.
type TransportError struct {
	Message string
}

func (Found) isSearchOutcome()          {}
func (PartialMatch) isSearchOutcome()   {}
func (NotFound) isSearchOutcome()       {}
func (TransportError) isSearchOutcome() {}

// NewTransportError builds the generic transport outcome.
func NewTransportError() TransportError {
	return TransportError{Message: transportMessage}
}

// NewNotFound builds a NotFound outcome, falling back to the generic hint
// when message is blank.
func NewNotFound(message string) NotFound {
	if strings.TrimSpace(message) == "" {
		message = notFoundFallback
	}
	return NotFound{Message: message}
}
