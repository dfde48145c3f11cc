package channel

import "strconv"

// Card is the presentation model for one result.
type Card struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Number   string `json:"number"`

	// Badges holds the bundle badges in B1, B2, B3 order.
	Badges    []string `json:"badges"`
	AddOnOnly bool     `json:"addOnOnly"`

	AlaCarte AlaCarteRow `json:"alaCarte"`
	AddOn    *AddOnRow   `json:"addOn,omitempty"`
}

// AlaCarteRow describes the "A la Carte 10" line.
type AlaCarteRow struct {
	Available bool   `json:"available"`
	Price     string `json:"price"` // "$5" when available, "N/A" otherwise
}

// AddOnRow describes the "Add-on Pkg" line. Price is empty when there is no
// price line to show.
type AddOnRow struct {
	Name  string `json:"name"`
	Price string `json:"price,omitempty"`
}

// BuildCard derives the card for c.
func BuildCard(c Channel) Card {
	card := Card{
		Name:      c.Name,
		Category:  c.Category,
		Number:    c.Number,
		AddOnOnly: c.Bundles == "",
	}
	for _, b := range []Bundle{Bundle1, Bundle2, Bundle3} {
		if c.HasBundle(b) {
			card.Badges = append(card.Badges, b.Badge())
		}
	}

	if c.IsAlaCarte {
		card.AlaCarte = AlaCarteRow{Available: true, Price: FormatPrice(c.AlaCartePrice)}
	} else {
		card.AlaCarte = AlaCarteRow{Price: noAddOn}
	}

	if c.AddOn != nil {
		row := &AddOnRow{Name: c.AddOn.Name}
		if c.AddOn.Price > 0 {
			row.Price = FormatPrice(c.AddOn.Price) + "/mo"
		}
		card.AddOn = row
	}
	return card
}

// FormatPrice renders p in dollars without trailing zeros: 5 -> "$5", 5.5 -> "$5.5".
func FormatPrice(p float64) string {
	return "$" + strconv.FormatFloat(p, 'f', -1, 64)
}
