// Package textgen synthesizes human-plausible transaction labels, free-text
// details, and product names from fixed vocabularies. It is independent of
// time and account state; all randomness comes from the caller's Sampler.
package textgen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/stubbank/stubbank/internal/sampling"
)

var operationTypes = []string{
	"Paiement CB",
	"Retrait DAB",
	"Virement reçu",
	"Virement émis",
	"Prélèvement",
	"Remboursement",
	"Achat en ligne",
	"Facture",
	"Crédit sur compte",
	"Abonnement",
}

var merchants = []string{
	"Amazon",
	"Carrefour",
	"Fnac",
	"Uber",
	"Netflix",
	"Airbnb",
	"Apple Store",
	"Boulanger",
	"Auchan",
	"Cdiscount",
}

var locations = []string{
	"Paris",
	"Lyon",
	"Marseille",
	"Bordeaux",
	"Toulouse",
	"Lille",
	"Nice",
	"Strasbourg",
	"Nantes",
	"Montpellier",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
	"adipiscing", "elit", "sed", "do", "eiusmod", "tempor",
	"incididunt", "ut", "labore", "et", "dolore", "magna",
	"aliqua", "enim", "ad", "minim", "veniam", "quis",
	"nostrud", "exercitation", "ullamco", "laboris", "nisi",
	"aliquip", "ex", "ea", "commodo", "consequat",
	"duis", "aute", "irure", "in", "reprehenderit",
	"voluptate", "velit", "esse", "cillum",
	"eu", "fugiat", "nulla", "pariatur", "excepteur",
	"sint", "occaecat", "cupidatat", "non", "proident",
	"sunt", "culpa", "qui", "officia", "deserunt",
	"mollit", "anim", "id", "est", "laborum",
}

var products = []string{
	// High-tech
	"Laptop", "Gaming Laptop", "Wireless Bluetooth Earbuds", "Smartphone",
	"Ultra HD 4K Smart TV", "Gaming Keyboard", "Wireless Mouse",
	"Mechanical Keyboard", "External SSD 1TB", "Professional DSLR Camera",
	"Smartwatch with Heart Monitor", "Portable Bluetooth Speaker",
	"High-Speed WiFi Router", "Digital Drawing Tablet", "Noise Cancelling Headphones",

	// Appliances
	"Electric Kettle", "Microwave Oven", "Smart LED Light Bulb",
	"Robot Vacuum Cleaner", "Wireless Charging Pad", "Air Fryer XL",
	"Automatic Coffee Machine", "Smart Door Lock with Fingerprint Scanner",

	// Clothing
	"Men's Leather Jacket", "Women's Summer Dress", "Casual Sneakers",
	"Running Shoes", "Designer Handbag", "Unisex Hoodie", "Formal Suit",
	"Slim Fit Jeans", "Winter Boots", "Athletic T-Shirt", "Cotton Sweatpants",

	// Cosmetics
	"Luxury Eau de Parfum", "Fresh Citrus Cologne", "Rose Scented Body Mist",
	"Vanilla and Musk Perfume", "Men's Aftershave Balm", "Organic Face Cream",
	"Aloe Vera Moisturizer", "Exfoliating Body Scrub", "Red Matte Lipstick",

	// Toys
	"LEGO City Set", "Remote Control Car", "Plush Teddy Bear",
	"Educational Wooden Puzzle", "Dinosaur Action Figure", "Barbie Doll House",
	"Interactive Talking Robot", "Baby Stroller", "Kids Play Tent",
	"Board Game: Monopoly", "Musical Toy Piano",

	// Food & drink
	"Organic Honey 500g", "Italian Roasted Coffee Beans", "Dark Chocolate Bar",
	"Gourmet Olive Oil 1L", "Freshly Baked Croissant Pack", "Almond & Oat Granola",
	"Bottle of Red Wine", "Japanese Matcha Green Tea", "Premium Sushi Rice",
	"Handmade Raspberry Jam", "Spicy BBQ Sauce", "Vegan Protein Powder",

	// Misc
	"Yoga Mat with Carry Strap", "Waterproof Hiking Backpack", "Luxury Bath Towel Set",
	"Portable Camping Stove", "Rechargeable LED Flashlight", "Hardcover Travel Journal",
}

// OperationLabel returns a bank-statement style label such as
// "Paiement CB Carrefour Lyon (X4J2K9A1B7)".
func OperationLabel(s *sampling.Sampler) string {
	return fmt.Sprintf("%s %s %s (%s)",
		operationTypes[s.IntN(len(operationTypes))],
		merchants[s.IntN(len(merchants))],
		locations[s.IntN(len(locations))],
		Reference(s, 10))
}

// OperationDetails returns wordCount lorem-ipsum words as a sentence.
func OperationDetails(s *sampling.Sampler, wordCount int) string {
	if wordCount <= 0 {
		return ""
	}
	words := make([]string, wordCount)
	for i := range words {
		words[i] = loremWords[s.IntN(len(loremWords))]
	}
	sentence := strings.Join(words, " ") + "."
	runes := []rune(sentence)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ProductName returns a plausible product name.
func ProductName(s *sampling.Sampler) string {
	return products[s.IntN(len(products))]
}

// Reference returns an uppercase alphanumeric reference of the given length.
func Reference(s *sampling.Sampler, length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		if s.Chance(50) {
			b.WriteByte(byte('A' + s.IntN(26)))
		} else {
			b.WriteByte(byte('0' + s.IntN(10)))
		}
	}
	return b.String()
}
