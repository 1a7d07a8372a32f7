package models

import (
	"gorm.io/datatypes"
)

// Wishlist is a saved-for-later set of property ids, one record per user
// identity, upserted on first write.
type Wishlist struct {
	BaseModel

	UserID      string                      `gorm:"uniqueIndex;not null" json:"userId"`
	PropertyIDs datatypes.JSONSlice[string] `json:"propertyIds"`
}

// Has reports set membership.
func (w *Wishlist) Has(propertyID string) bool {
	for _, id := range w.PropertyIDs {
		if id == propertyID {
			return true
		}
	}
	return false
}

// Add appends the id if absent. Adding twice is a no-op after the first.
func (w *Wishlist) Add(propertyID string) {
	if !w.Has(propertyID) {
		w.PropertyIDs = append(w.PropertyIDs, propertyID)
	}
}

// Remove drops the id if present. Removing an absent id leaves the set
// unchanged.
func (w *Wishlist) Remove(propertyID string) {
	kept := w.PropertyIDs[:0]
	for _, id := range w.PropertyIDs {
		if id != propertyID {
			kept = append(kept, id)
		}
	}
	w.PropertyIDs = kept
}
