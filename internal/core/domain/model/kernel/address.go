package kernel

import (
	"fmt"
	"strings"
)

// Address is a delivery destination made of city, street and house.
//
// Unlike other kernel values an Address can always be constructed: whether it is
// complete enough to deliver to is a business decision made by the eligibility
// evaluator, so blank fields are stored as given and reported by IsComplete.
// Field values are never trimmed or otherwise rewritten.
type Address struct {
	city   string
	street string
	house  string
}

// NewAddress creates an Address from its three parts.
func NewAddress(city, street, house string) Address {
	return Address{
		city:   city,
		street: street,
		house:  house,
	}
}

// City returns the city exactly as supplied.
func (a Address) City() string {
	return a.city
}

// Street returns the street exactly as supplied.
func (a Address) Street() string {
	return a.street
}

// House returns the house number exactly as supplied.
func (a Address) House() string {
	return a.house
}

// IsComplete reports whether city, street and house are all non-blank.
// Whitespace-only values count as missing. The zero Address is incomplete.
func (a Address) IsComplete() bool {
	return len(a.MissingFields()) == 0
}

// MissingFields returns the names of blank fields in city, street, house order.
func (a Address) MissingFields() []string {
	var missing []string
	if isBlank(a.city) {
		missing = append(missing, "city")
	}
	if isBlank(a.street) {
		missing = append(missing, "street")
	}
	if isBlank(a.house) {
		missing = append(missing, "house")
	}
	return missing
}

// IsEqual compares addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a == other
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s", a.city, a.street, a.house)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
