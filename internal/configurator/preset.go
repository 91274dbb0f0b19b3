package configurator

import "renovo/internal/domain/catalog"

// ApplyPreset merges a preset's products into the cart in item order. Items
// without a product and products already in the cart are skipped; every
// remaining product gets a fresh line with quantity 1 at its listed price.
// Applying the same preset again adds nothing. It returns the number of lines
// added.
func ApplyPreset(cart *Cart, preset catalog.Preset) int {
	added := 0
	for _, item := range preset.Items {
		if item.Product == nil {
			continue
		}
		if cart.AddProduct(*item.Product) {
			added++
		}
	}
	return added
}
