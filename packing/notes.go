package packing

import "strings"

// noteRule attaches an advisory string to an item when its condition holds.
type noteRule struct {
	applies func(item CatalogItem, f Facts) bool
	text    string
}

var noteRules = []noteRule{
	{func(item CatalogItem, f Facts) bool {
		return f.Climate == ClimateTropical && nameContains(item, "sunscreen")
	}, "Use high SPF; tropical sun is intense"},
	{func(item CatalogItem, f Facts) bool {
		return f.Climate == ClimateTropical && item.Category == CategoryClothing
	}, "Choose lightweight, breathable fabrics"},
	{func(item CatalogItem, f Facts) bool {
		return f.Climate == ClimateCold && nameContains(item, "jacket", "thermal")
	}, "Layer up; temperatures can drop sharply"},
	{func(item CatalogItem, f Facts) bool {
		return f.Climate == ClimateArid && nameContains(item, "water bottle")
	}, "Carry extra water throughout the day"},
	{func(item CatalogItem, f Facts) bool {
		return f.Trip.HasActivity(ActivitySwimming) && nameContains(item, "swimsuit")
	}, "Pack a spare so one can dry"},
	{func(item CatalogItem, f Facts) bool {
		return f.Trip.DurationDays > 7 && nameContains(item, "underwear", "socks")
	}, "Plan on doing laundry mid-trip"},
	{func(item CatalogItem, f Facts) bool {
		return f.Trip.Travelers > 2 && nameContains(item, "first aid")
	}, "Stock extra supplies for the group"},
	{func(item CatalogItem, f Facts) bool {
		return nameContains(item, "power adapter") && ResolveClimate(f.Trip.Destination) != ClimateTemperate
	}, "Check the destination's plug type before departure"},
	{func(item CatalogItem, f Facts) bool {
		return infoContains(f, "wedding") && nameContains(item, "dress", "suit")
	}, "Confirm the dress code with your hosts"},
	{func(item CatalogItem, f Facts) bool {
		return f.Trip.GenderSplit == GenderBoth && nameContains(item, "toiletr", "shampoo")
	}, "Consider sharing toiletries to save space"},
	{func(item CatalogItem, f Facts) bool {
		return strings.Contains(strings.ToLower(f.Trip.Destination), "japan") && nameContains(item, "walking shoes")
	}, "Expect a lot of walking; bring broken-in shoes"},
}

// GenerateNotes collects advisory notes for an item from the fixed note
// table, joined with ". ". It returns an empty string when nothing applies;
// callers must treat that as "no note", never render it.
func GenerateNotes(item CatalogItem, f Facts) string {
	var notes []string
	for _, rule := range noteRules {
		if rule.applies(item, f) {
			notes = append(notes, rule.text)
		}
	}
	return strings.Join(notes, ". ")
}
