package packing

import "strings"

// Destination keyword lists checked in priority order. The first list with a
// match wins; anything unmatched is treated as temperate.
var climateKeywords = []struct {
	climate  ClimateTag
	keywords []string
}{
	{ClimateTropical, []string{
		"thailand", "bangkok", "phuket", "bali", "indonesia", "malaysia",
		"singapore", "vietnam", "philippines", "hawaii", "maldives",
		"caribbean", "jamaica", "fiji", "cancun", "costa rica", "brazil",
		"rio", "miami", "sri lanka", "seychelles",
	}},
	{ClimateCold, []string{
		"iceland", "reykjavik", "norway", "oslo", "sweden", "stockholm",
		"finland", "helsinki", "lapland", "alaska", "greenland", "siberia",
		"moscow", "russia", "antarctica", "montreal", "quebec", "canada",
	}},
	{ClimateArid, []string{
		"dubai", "abu dhabi", "qatar", "doha", "saudi", "oman", "egypt",
		"cairo", "morocco", "marrakech", "sahara", "namibia", "atacama",
		"arizona", "nevada", "las vegas", "outback",
	}},
	{ClimateMediterranean, []string{
		"greece", "athens", "santorini", "crete", "italy", "rome", "sicily",
		"spain", "barcelona", "madrid", "portugal", "lisbon", "croatia",
		"malta", "cyprus", "nice", "marseille", "turkey", "izmir",
	}},
}

// ResolveClimate derives a climate tag from free-form destination text.
// Matching is a case-insensitive substring check against fixed keyword lists,
// tried tropical first, then cold, arid and mediterranean. Destinations that
// match nothing resolve to temperate; there are no error conditions.
func ResolveClimate(destination string) ClimateTag {
	dest := strings.ToLower(destination)
	for _, group := range climateKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(dest, kw) {
				return group.climate
			}
		}
	}
	return ClimateTemperate
}
