package domain

import "time"

// AccountAction names the mutation recorded in the audit trail.
type AccountAction string

const (
	ActionAccountCreated AccountAction = "account_created"
	ActionAccountUpdated AccountAction = "account_updated"
	ActionAccountDeleted AccountAction = "account_deleted"
)

// AccountEvent is an audit record of a committed account mutation.
type AccountEvent struct {
	AccountID  int64
	Action     AccountAction
	Email      string   // set on create
	Role       string   // set on create
	Fields     []string // changed columns on update, never values
	RequestID  string
	OccurredAt time.Time
}
