package domain

import (
	"github.com/gofrs/uuid/v5"
)

// CategoryType is the side of the ledger a category belongs to by default.
type CategoryType int8

const (
	CategoryExpense CategoryType = iota
	CategoryIncome
)

// Category is the grouping key for both executed transactions and recurring
// templates. Identity is by ID. Transactions carry a nil category reference
// for transfer legs, which stay out of category aggregation entirely.
//
// Every field compares by value (ParentID is a NullUUID, not a pointer), so
// equal categories bucket together in map keys no matter which fetch
// produced them.
type Category struct {
	ID          uuid.UUID
	Name        string
	DefaultType CategoryType
	ParentID    uuid.NullUUID
	Icon        string
}
