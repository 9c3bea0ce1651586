// Package assetid maps vault categories to their short identifier codes
// and formats category-scoped asset identifiers.
package assetid

import "fmt"

// codes maps each vault category to its 3-letter identifier prefix.
var codes = map[string]string{
	"Baseball":   "BSB",
	"Basketball": "BKB",
	"Football":   "FTB",
	"Pokemon":    "PKM",
	"Soccer":     "SOC",
}

// Categories lists the supported vault categories in display order.
var Categories = []string{"Baseball", "Basketball", "Football", "Pokemon", "Soccer"}

// Code returns the identifier prefix for a category.
// The second return value is false for unknown categories.
func Code(category string) (string, bool) {
	code, ok := codes[category]
	return code, ok
}

// IsValidCategory reports whether a category is one of the supported vaults.
func IsValidCategory(category string) bool {
	_, ok := codes[category]
	return ok
}

// Format builds an asset identifier from a category code and a
// 1-based sequence number, e.g. Format("BSB", 1) == "BSB-00000001".
func Format(code string, seq int64) string {
	return fmt.Sprintf("%s-%08d", code, seq)
}
