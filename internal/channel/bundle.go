package channel

import "fmt"

// Bundle is one of the fixed subscription packages, or All.
type Bundle string

const (
	BundleAll Bundle = "All"
	Bundle1   Bundle = "Bundle 1"
	Bundle2   Bundle = "Bundle 2"
	Bundle3   Bundle = "Bundle 3"
)

// Bundles lists the selector options in display order.
var Bundles = []Bundle{BundleAll, Bundle1, Bundle2, Bundle3}

// Label is the text shown in the bundle selector.
func (b Bundle) Label() string {
	switch b {
	case BundleAll:
		return "All Bundles"
	case Bundle1:
		return "Bundle 1 (Strtr)"
	case Bundle2:
		return "Bundle 2 (Strtr + pck 10 + SN&TSN)"
	case Bundle3:
		return "Bundle 3 (Better)"
	default:
		return string(b)
	}
}

// Badge is the short marker shown on a card.
func (b Bundle) Badge() string {
	switch b {
	case Bundle1:
		return "B1"
	case Bundle2:
		return "B2 (with pick 10)"
	case Bundle3:
		return "B3"
	default:
		return ""
	}
}

// ParseBundle accepts exactly the enumerated values. An empty string means All.
func ParseBundle(s string) (Bundle, error) {
	if s == "" {
		return BundleAll, nil
	}
	for _, b := range Bundles {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown bundle %q (want one of All, Bundle 1, Bundle 2, Bundle 3)", s)
}
