package services

import "moneybook/internal/models"

// Resolution is the outcome of a last-write-wins comparison.
type Resolution int

const (
	// Replace means the incoming version is applied.
	Replace Resolution = iota
	// Keep means the stored version wins and the incoming one is dropped.
	Keep
)

func (r Resolution) String() string {
	if r == Keep {
		return "keep"
	}
	return "replace"
}

// Resolve decides between a stored transaction and an incoming version of
// it. The stored one is kept only when both carry updatedAt and the
// incoming timestamp is strictly earlier; equal timestamps and missing
// timestamps let the incoming version through.
func Resolve(existing, incoming *models.Transaction) Resolution {
	if existing.UpdatedAt != nil && incoming.UpdatedAt != nil &&
		incoming.UpdatedAt.Before(*existing.UpdatedAt) {
		return Keep
	}
	return Replace
}
