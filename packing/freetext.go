package packing

import (
	"math"
	"strings"
)

// injectedItem is an item template added when a free-text keyword matches.
// Quantity may scale with trip duration.
type injectedItem struct {
	name      string
	category  string
	essential bool
	quantity  func(durationDays int) int
}

func fixedQty(n int) func(int) int {
	return func(int) int { return n }
}

func perDayQty(factor float64) func(int) int {
	return func(durationDays int) int {
		if durationDays < 1 {
			durationDays = 1
		}
		q := int(math.Ceil(float64(durationDays) * factor))
		if q < 1 {
			q = 1
		}
		return q
	}
}

// freeTextTriggers maps keyword groups to the items they inject. Matches are
// independent and additive across groups; there is no deduplication.
var freeTextTriggers = []struct {
	keywords []string
	items    []injectedItem
}{
	{[]string{"wedding"}, []injectedItem{
		{name: "Formal Outfit", category: CategoryClothing, essential: true, quantity: fixedQty(1)},
		{name: "Formal Shoes", category: CategoryFootwear, quantity: fixedQty(1)},
		{name: "Wedding Gift", category: CategoryAccessories, quantity: fixedQty(1)},
	}},
	{[]string{"baby", "infant"}, []injectedItem{
		{name: "Diapers", category: CategoryKids, essential: true, quantity: perDayQty(8)},
		{name: "Baby Wipes", category: CategoryKids, essential: true, quantity: perDayQty(1)},
		{name: "Baby Food", category: CategoryKids, essential: true, quantity: perDayQty(3)},
		{name: "Baby Clothes", category: CategoryKids, quantity: perDayQty(2)},
		{name: "Baby Bottle", category: CategoryKids, quantity: fixedQty(2)},
	}},
	{[]string{"kids", "children"}, []injectedItem{
		{name: "Kids Entertainment", category: CategoryKids, quantity: fixedQty(1)},
		{name: "Kids Snacks", category: CategoryKids, quantity: perDayQty(2)},
		{name: "Kids Clothes", category: CategoryKids, quantity: perDayQty(1.5)},
	}},
	{[]string{"medical", "prescription", "allergy"}, []injectedItem{
		{name: "Prescription Medications", category: CategoryHealth, essential: true, quantity: fixedQty(1)},
		{name: "Medical Documents", category: CategoryDocuments, essential: true, quantity: fixedQty(1)},
		{name: "Allergy Medication", category: CategoryHealth, quantity: fixedQty(1)},
	}},
	{[]string{"conference", "meeting", "presentation"}, []injectedItem{
		{name: "Business Cards", category: CategoryBusiness, quantity: fixedQty(1)},
		{name: "Laptop and Charger", category: CategoryElectronics, essential: true, quantity: fixedQty(1)},
		{name: "Notebook and Pen", category: CategoryBusiness, quantity: fixedQty(1)},
		{name: "Presentation Materials", category: CategoryBusiness, quantity: fixedQty(1)},
	}},
}

// InjectFromFreeText scans the trip's additional-info text for fixed keyword
// triggers and returns fully formed items for every group that matches.
func InjectFromFreeText(additionalInfo string, durationDays int, newID func() string) []Item {
	info := strings.ToLower(additionalInfo)
	var out []Item
	for _, trigger := range freeTextTriggers {
		matched := false
		for _, kw := range trigger.keywords {
			if strings.Contains(info, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, tpl := range trigger.items {
			out = append(out, Item{
				ID:          newID(),
				Name:        tpl.name,
				Category:    tpl.category,
				Essential:   tpl.essential,
				CustomAdded: true,
				Quantity:    tpl.quantity(durationDays),
			})
		}
	}
	return out
}
