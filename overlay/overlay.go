// Package overlay models the single modal a page can show.
//
// A State is a tagged union: the Kind says which modal is open and only the
// payload field matching that kind is meaningful. Exactly one overlay is open
// at a time and every transition replaces the whole State.
package overlay

import "net/url"

// Kind identifies a modal.
type Kind string

const (
	None       Kind = "NONE"
	Admin      Kind = "ADMIN"
	BookDetail Kind = "BOOK_DETAIL"
	NewsDetail Kind = "NEWS_DETAIL"
	Access     Kind = "ACCESS"
	Feature    Kind = "FEATURE"
	Librarian  Kind = "LIBRARIAN"
	Survey     Kind = "SURVEY"
	Calendar   Kind = "CALENDAR"
)

// Kinds lists every kind, None first.
var Kinds = []Kind{None, Admin, BookDetail, NewsDetail, Access, Feature, Librarian, Survey, Calendar}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// TakesPayload reports whether the kind carries an entity id.
func (k Kind) TakesPayload() bool {
	return k == BookDetail || k == NewsDetail
}

// State is the open overlay and its payload.
type State struct {
	Kind   Kind
	BookID string
	NewsID string
}

// Open returns the state for kind with the given payload id.
// The id is dropped for kinds that take no payload; an invalid kind yields the closed state.
func Open(kind Kind, id string) State {
	switch kind {
	case BookDetail:
		return State{Kind: BookDetail, BookID: id}
	case NewsDetail:
		return State{Kind: NewsDetail, NewsID: id}
	}
	if !kind.Valid() {
		return Close()
	}
	return State{Kind: kind}
}

// Close returns the closed state.
func Close() State {
	return State{Kind: None}
}

// Navigate switches to kind without a payload.
func Navigate(kind Kind) State {
	return Open(kind, "")
}

// IsOpen reports whether a modal is shown.
func (s State) IsOpen() bool {
	return s.Kind != None && s.Kind != ""
}

// Payload returns the id carried by the state, if any.
func (s State) Payload() string {
	switch s.Kind {
	case BookDetail:
		return s.BookID
	case NewsDetail:
		return s.NewsID
	default:
		return ""
	}
}

const (
	queryModal = "modal"
	queryID    = "id"
)

// FromQuery decodes a state from page query parameters (?modal=BOOK_DETAIL&id=2).
// Missing or unknown kinds decode to the closed state.
func FromQuery(q url.Values) State {
	kind := Kind(q.Get(queryModal))
	if kind == "" {
		return Close()
	}
	return Open(kind, q.Get(queryID))
}

// Query encodes the state into page query parameters. The closed state encodes to no parameters.
func (s State) Query() url.Values {
	q := url.Values{}
	if !s.IsOpen() {
		return q
	}
	q.Set(queryModal, string(s.Kind))
	if id := s.Payload(); id != "" {
		q.Set(queryID, id)
	}
	return q
}
