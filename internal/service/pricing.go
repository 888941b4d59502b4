package service

// Pricing constants, amounts in IDR (no sub-units).
const (
	taxRatePercent        = 11     // Indonesian VAT
	freeShippingThreshold = 100000 // free shipping at or above this subtotal
	standardShipping      = 15000
)

// Fixed surcharge table for optional toppings, keyed by customization
// identifier. Must match the seeded customization_options rows.
var toppingSurcharges = map[string]int64{
	"tapioca_pearl": 5000,
	"coconut_jelly": 5000,
	"aloe_vera":     6000,
	"pudding":       7000,
	"red_bean":      6000,
	"cheese_foam":   10000,
	"brown_sugar":   5000,
	"grass_jelly":   5000,
}

// ToppingSurcharge returns the fixed add-on price for a topping identifier.
// Unknown identifiers contribute 0.
func ToppingSurcharge(name string) int64 {
	return toppingSurcharges[name]
}

// PricedItem is one cart line with its prices already resolved server-side.
// Callers validate Quantity >= 1 and non-negative prices before pricing.
type PricedItem struct {
	Quantity          int
	UnitBasePrice     int64
	UnitPriceModifier int64
	Surcharges        []int64
}

// UnitPrice is the effective per-unit price including the variant surcharge
// and every selected add-on.
func (it PricedItem) UnitPrice() int64 {
	price := it.UnitBasePrice + it.UnitPriceModifier
	for _, s := range it.Surcharges {
		price += s
	}
	return price
}

func (it PricedItem) LineTotal() int64 {
	return it.UnitPrice() * int64(it.Quantity)
}

type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Shipping int64 `json:"shipping"`
	Discount int64 `json:"discount"`
	Total    int64 `json:"total"`
}

// CalculateTotals computes subtotal, tax, shipping, discount and total for a
// set of priced lines. Pure arithmetic, no side effects. Tax is rounded
// half-up to the nearest rupiah; shipping is the standard fee below the
// free-shipping threshold (including an empty or zero-value cart). Discount
// is always 0 for now; coupon support would plug in here.
func CalculateTotals(items []PricedItem) Totals {
	var subtotal int64
	for _, it := range items {
		subtotal += it.LineTotal()
	}

	tax := (subtotal*taxRatePercent + 50) / 100

	shipping := int64(standardShipping)
	if subtotal >= freeShippingThreshold {
		shipping = 0
	}

	var discount int64

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal + tax + shipping - discount,
	}
}
