package models

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is the lowercase entity name used in routes, events and messages.
type Kind string

const (
	KindTournament Kind = "tournament"
	KindTeam       Kind = "team"
	KindPlayer     Kind = "player"
	KindMatch      Kind = "match"
)

// Title returns the kind with an upper-case first letter ("Tournament").
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Entity is implemented by pointers to every persisted record type.
type Entity interface {
	GetID() int64
	SetID(id int64)
	// ApplyDefaults fills defaultable fields the client left empty.
	ApplyDefaults()
	// Validate reports missing required fields keyed by their JSON name.
	Validate() ValidationErrors
	// References lists the soft foreign keys carried by the record.
	References() []Reference
}

// Reference is a soft foreign key: an id pointing at another entity's row.
type Reference struct {
	Field string
	Kind  Kind
	ID    *int64
}

// ValidationErrors maps a JSON field name to a human readable message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, v[k])
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) requireText(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		v[field] = message
	}
}

func (v ValidationErrors) requireDate(field string, value Date, message string) {
	if value.IsZero() {
		v[field] = message
	}
}

func (v ValidationErrors) orNil() ValidationErrors {
	if len(v) == 0 {
		return nil
	}
	return v
}

func ref(field string, kind Kind, id *int64) Reference {
	return Reference{Field: field, Kind: kind, ID: id}
}

func (r Reference) String() string {
	if r.ID == nil {
		return fmt.Sprintf("%s -> %s(nil)", r.Field, r.Kind)
	}
	return fmt.Sprintf("%s -> %s(%d)", r.Field, r.Kind, *r.ID)
}
