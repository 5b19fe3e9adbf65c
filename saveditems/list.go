package saveditems

import (
	"time"

	"kirana/models"
)

// Outcome tags the result of a list mutation so callers can tell a
// successful no-op (AlreadyPresent, AlreadyAtDestination) apart from a
// real mutation and from a miss.
type Outcome int

const (
	OutcomeAdded Outcome = iota
	OutcomeAlreadyPresent
	OutcomeRemoved
	OutcomeUpdated
	OutcomeNotFound
	OutcomeMoved
	OutcomeAlreadyAtDestination
	OutcomeSourceNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeAlreadyPresent:
		return "already_present"
	case OutcomeRemoved:
		return "removed"
	case OutcomeUpdated:
		return "updated"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeMoved:
		return "moved"
	case OutcomeAlreadyAtDestination:
		return "already_at_destination"
	case OutcomeSourceNotFound:
		return "source_not_found"
	}
	return "unknown"
}

// findEntry returns the index of the entry for productID, or -1. Product
// identity is the id's string form.
func findEntry(items []models.ListEntry, productID string) int {
	for i, entry := range items {
		if entry.ProductID == productID {
			return i
		}
	}
	return -1
}

func removeEntry(items []models.ListEntry, i int) []models.ListEntry {
	return append(items[:i], items[i+1:]...)
}

func newList(kind, userID string, now time.Time) *models.SavedList {
	return &models.SavedList{
		Kind:      kind,
		UserID:    userID,
		Items:     []models.ListEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
