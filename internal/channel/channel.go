package channel

import "strings"

// AddOn is a named supplementary package a channel belongs to.
type AddOn struct {
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

// Channel is one normalized row of the lookup table.
type Channel struct {
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Number        string  `json:"number" yaml:"number"`
	Category      string  `json:"category" yaml:"category"`
	Bundles       string  `json:"bundles" yaml:"bundles"`
	IsAlaCarte    bool    `json:"isAlaCarte" yaml:"isAlaCarte"`
	AlaCartePrice float64 `json:"alaCartePrice" yaml:"alaCartePrice"`
	AddOn         *AddOn  `json:"addOn,omitempty" yaml:"addOn,omitempty"`
}

// noAddOn is the placeholder the backend stores instead of a null add-on name.
const noAddOn = "N/A"

// Record is a raw row as read from a data source. Every column may be null.
type Record struct {
	Index         int
	Name          *string
	Number        *string
	Category      *string
	Bundles       *string
	AlaCarte      *bool
	AlaCartePrice *float64
	AddOnName     *string
	AddOnPrice    *float64
}

// Normalize maps a raw record onto a Channel, substituting defaults for
// missing columns. A record is never rejected.
func Normalize(r Record) Channel {
	c := Channel{
		ID:            r.Index,
		Name:          deref(r.Name),
		Number:        deref(r.Number),
		Category:      deref(r.Category),
		Bundles:       deref(r.Bundles),
		IsAlaCarte:    r.AlaCarte != nil && *r.AlaCarte,
		AlaCartePrice: nonNegative(r.AlaCartePrice),
	}
	if name := deref(r.AddOnName); name != "" && name != noAddOn {
		c.AddOn = &AddOn{Name: name, Price: nonNegative(r.AddOnPrice)}
	}
	return c
}

// NormalizeAll preserves the order of recs.
func NormalizeAll(recs []Record) []Channel {
	out := make([]Channel, 0, len(recs))
	for _, r := range recs {
		out = append(out, Normalize(r))
	}
	return out
}

// HasBundle reports whether the bundle text mentions b. The test is a plain,
// case-sensitive substring check.
func (c Channel) HasBundle(b Bundle) bool {
	return strings.Contains(c.Bundles, string(b))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNegative(f *float64) float64 {
	if f == nil || *f < 0 {
		return 0
	}
	return *f
}
