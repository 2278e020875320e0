package models

type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// ChangeEvent describes a successful write to one of the entity stores.
type ChangeEvent struct {
	Kind    Kind
	Action  ChangeAction
	ID      int64
	Payload any
}

// Type is the wire name of the event, e.g. "team.updated".
func (e ChangeEvent) Type() string {
	return string(e.Kind) + "." + string(e.Action)
}
