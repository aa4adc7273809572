package models

// AddressEntry represents one saved, user-labeled postal address together with the address components resolved for its postal code.
type AddressEntry struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	DisplayName  string `json:"displayName"`
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Region       string `json:"region"`
}

// AddressFragment is the part of an address returned by the postal code lookup service.
type AddressFragment struct {
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Region       string `json:"region"`
}

// EntryPatch holds the fields of an entry that may change after creation.
type EntryPatch struct {
	DisplayName *string `json:"displayName,omitempty"`
}

// FilterField selects which entry field a list filter is matched against.
type FilterField string

const (
	FilterByUsername    FilterField = "username"
	FilterByCity        FilterField = "city"
	FilterByRegion      FilterField = "region"
	FilterByDisplayName FilterField = "displayName"
)

// FilterFields lists the supported filter modes in display order.
var FilterFields = []FilterField{FilterByUsername, FilterByCity, FilterByRegion, FilterByDisplayName}

// ParseFilterField maps a query value to a filter mode. An empty value means
// username; any other value is kept as given, and an unsupported field
// matches every entry.
func ParseFilterField(s string) FilterField {
	if s == "" {
		return FilterByUsername
	}
	return FilterField(s)
}

// Value returns the entry field selected by f.
func (e AddressEntry) Value(f FilterField) (string, bool) {
	switch f {
	case FilterByUsername:
		return e.Username, true
	case FilterByCity:
		return e.City, true
	case FilterByRegion:
		return e.Region, true
	case FilterByDisplayName:
		return e.DisplayName, true
	default:
		return "", false
	}
}
