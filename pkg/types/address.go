package types

import "strings"

// Address is the shipping destination snapshot carried on delivery lines.
type Address struct {
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
}

// IsZero reports whether no field is populated.
func (a Address) IsZero() bool {
	return a.Line1 == "" && a.Line2 == nil && a.City == "" &&
		a.State == "" && a.PostalCode == "" && a.Country == ""
}

// Normalized returns a copy with trimmed fields and a defaulted country.
func (a Address) Normalized() Address {
	out := a
	out.Line1 = strings.TrimSpace(a.Line1)
	out.City = strings.TrimSpace(a.City)
	out.State = strings.TrimSpace(a.State)
	out.PostalCode = strings.TrimSpace(a.PostalCode)
	out.Country = strings.TrimSpace(a.Country)
	if out.Country == "" {
		out.Country = "US"
	}
	if a.Line2 != nil {
		line2 := strings.TrimSpace(*a.Line2)
		if line2 == "" {
			out.Line2 = nil
		} else {
			out.Line2 = &line2
		}
	}
	return out
}
