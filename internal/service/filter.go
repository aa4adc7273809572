package service

import (
	"strings"

	"address-catalog/internal/models"
)

// FilterEntries returns the entries whose selected field contains text, ignoring case.
// Empty text or an unknown field yields every entry. Order is preserved.
func FilterEntries(entries []models.AddressEntry, field models.FilterField, text string) []models.AddressEntry {
	result := make([]models.AddressEntry, 0, len(entries))
	if text == "" {
		return append(result, entries...)
	}

	needle := strings.ToLower(text)
	for _, entry := range entries {
		value, ok := entry.Value(field)
		if !ok || strings.Contains(strings.ToLower(value), needle) {
			result = append(result, entry)
		}
	}
	return result
}
