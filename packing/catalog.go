package packing

// Item categories used by the catalog and the free-text injector.
const (
	CategoryDocuments    = "Documents"
	CategoryClothing     = "Clothing"
	CategoryFootwear     = "Footwear"
	CategoryToiletries   = "Toiletries"
	CategoryHealth       = "Health"
	CategoryElectronics  = "Electronics"
	CategoryAccessories  = "Accessories"
	CategoryActivityGear = "Activity Gear"
	CategoryKids         = "Kids & Baby"
	CategoryBusiness     = "Business"
)

// defaultCatalog is the built-in candidate item table. It is populated once
// at init and must never be mutated; Catalog returns a copy for callers that
// need to inspect it.
var defaultCatalog = []CatalogItem{
	// Documents and always-relevant basics.
	{Name: "Passport", Category: CategoryDocuments, Essential: true},
	{Name: "Travel Documents", Category: CategoryDocuments, Essential: true},
	{Name: "Travel Insurance Papers", Category: CategoryDocuments},
	{Name: "Wallet", Category: CategoryAccessories, Essential: true},
	{Name: "Phone", Category: CategoryElectronics, Essential: true},
	{Name: "Phone Charger", Category: CategoryElectronics, Essential: true},
	{Name: "Power Adapter", Category: CategoryElectronics},
	{Name: "Power Bank", Category: CategoryElectronics},
	{Name: "Power Strip", Category: CategoryElectronics},
	{Name: "Headphones", Category: CategoryElectronics},
	{Name: "Camera", Category: CategoryElectronics, Activities: []ActivityTag{ActivityPhotography, ActivitySightseeing}},
	{Name: "Camera Lens Kit", Category: CategoryElectronics, Activities: []ActivityTag{ActivityPhotography}},
	{Name: "Tripod", Category: CategoryElectronics, Activities: []ActivityTag{ActivityPhotography}},

	// Core clothing.
	{Name: "Underwear", Category: CategoryClothing, Essential: true},
	{Name: "Socks", Category: CategoryClothing, Essential: true},
	{Name: "T-Shirts", Category: CategoryClothing, Essential: true},
	{Name: "Pants", Category: CategoryClothing, Essential: true},
	{Name: "Jeans", Category: CategoryClothing},
	{Name: "Shorts", Category: CategoryClothing, Climates: []ClimateTag{ClimateTropical, ClimateArid, ClimateMediterranean}},
	{Name: "Light Jacket", Category: CategoryClothing, Climates: []ClimateTag{ClimateTemperate, ClimateMediterranean}},
	{Name: "Winter Jacket", Category: CategoryClothing, Climates: []ClimateTag{ClimateCold}},
	{Name: "Thermal Underwear", Category: CategoryClothing, Climates: []ClimateTag{ClimateCold}, Activities: []ActivityTag{ActivitySkiing}},
	{Name: "Sweater", Category: CategoryClothing, Climates: []ClimateTag{ClimateCold, ClimateTemperate}},
	{Name: "Rain Jacket", Category: CategoryClothing, Climates: []ClimateTag{ClimateTemperate, ClimateTropical}},
	{Name: "Gloves", Category: CategoryClothing, Climates: []ClimateTag{ClimateCold}},
	{Name: "Scarf", Category: CategoryClothing, Climates: []ClimateTag{ClimateCold}},
	{Name: "Wool Hat", Category: CategoryClothing, Climates: []ClimateTag{ClimateCold}},
	{Name: "Sun Hat", Category: CategoryAccessories, Climates: []ClimateTag{ClimateTropical, ClimateArid, ClimateMediterranean}},
	{Name: "Pajamas", Category: CategoryClothing},
	{Name: "Belt", Category: CategoryAccessories, Gender: GenderMale},
	{Name: "Tie", Category: CategoryBusiness, Gender: GenderMale, BusinessTrip: true},
	{Name: "Dress", Category: CategoryClothing, Gender: GenderFemale},
	{Name: "Evening Dress", Category: CategoryClothing, Gender: GenderFemale},
	{Name: "Skirt", Category: CategoryClothing, Gender: GenderFemale},
	{Name: "Leggings", Category: CategoryClothing, Gender: GenderFemale, Activities: []ActivityTag{ActivityYoga, ActivityRunning}},

	// Business wear.
	{Name: "Business Suit", Category: CategoryBusiness, BusinessTrip: true},
	{Name: "Dress Shirt", Category: CategoryBusiness, BusinessTrip: true},
	{Name: "Blazer", Category: CategoryBusiness, BusinessTrip: true},
	{Name: "Laptop", Category: CategoryElectronics, BusinessTrip: true, Activities: []ActivityTag{ActivityBusiness}},
	{Name: "Laptop Charger", Category: CategoryElectronics, BusinessTrip: true, Activities: []ActivityTag{ActivityBusiness}},
	{Name: "Business Cards", Category: CategoryBusiness, BusinessTrip: true, Activities: []ActivityTag{ActivityBusiness}},
	{Name: "Notebook and Pen", Category: CategoryBusiness, BusinessTrip: true},

	// Footwear.
	{Name: "Walking Shoes", Category: CategoryFootwear, Essential: true},
	{Name: "Dress Shoes", Category: CategoryFootwear, BusinessTrip: true},
	{Name: "Sandals", Category: CategoryFootwear, Climates: []ClimateTag{ClimateTropical, ClimateMediterranean}, Activities: []ActivityTag{ActivityBeach}},
	{Name: "Hiking Boots", Category: CategoryFootwear, Activities: []ActivityTag{ActivityHiking, ActivityCamping}},
	{Name: "Running Shoes", Category: CategoryFootwear, Activities: []ActivityTag{ActivityRunning}},
	{Name: "High Heels", Category: CategoryFootwear, Gender: GenderFemale},

	// Toiletries.
	{Name: "Toothbrush", Category: CategoryToiletries, Essential: true},
	{Name: "Toothpaste", Category: CategoryToiletries, Essential: true},
	{Name: "Deodorant", Category: CategoryToiletries, Essential: true},
	{Name: "Shampoo", Category: CategoryToiletries},
	{Name: "Razor", Category: CategoryToiletries},
	{Name: "Makeup Kit", Category: CategoryToiletries, Gender: GenderFemale},
	{Name: "Hair Dryer", Category: CategoryToiletries, Gender: GenderFemale},
	{Name: "Laundry Detergent Sheets", Category: CategoryToiletries},
	{Name: "Sewing Kit", Category: CategoryAccessories},

	// Health.
	{Name: "First Aid Kit", Category: CategoryHealth},
	{Name: "Sunscreen", Category: CategoryHealth, Climates: []ClimateTag{ClimateTropical, ClimateArid, ClimateMediterranean}, Activities: []ActivityTag{ActivityBeach, ActivitySwimming, ActivityHiking}},
	{Name: "Insect Repellent", Category: CategoryHealth, Climates: []ClimateTag{ClimateTropical}},
	{Name: "Lip Balm", Category: CategoryHealth, Climates: []ClimateTag{ClimateCold, ClimateArid}},
	{Name: "Moisturizer", Category: CategoryHealth, Climates: []ClimateTag{ClimateCold, ClimateArid}},
	{Name: "Hand Sanitizer", Category: CategoryHealth},
	{Name: "Motion Sickness Tablets", Category: CategoryHealth},

	// Accessories.
	{Name: "Sunglasses", Category: CategoryAccessories, Climates: []ClimateTag{ClimateTropical, ClimateArid, ClimateMediterranean}},
	{Name: "Water Bottle", Category: CategoryAccessories, Activities: []ActivityTag{ActivityHiking, ActivityCycling, ActivityRunning}},
	{Name: "Day Pack", Category: CategoryAccessories, Activities: []ActivityTag{ActivityHiking, ActivitySightseeing}},
	{Name: "Travel Pillow", Category: CategoryAccessories},
	{Name: "Umbrella", Category: CategoryAccessories, Climates: []ClimateTag{ClimateTemperate, ClimateTropical}},
	{Name: "Playing Cards", Category: CategoryAccessories},
	{Name: "Travel Games", Category: CategoryAccessories},
	{Name: "Cultural Guidebook", Category: CategoryAccessories, Activities: []ActivityTag{ActivitySightseeing}},
	{Name: "Phrase Book", Category: CategoryAccessories, Activities: []ActivityTag{ActivitySightseeing}},

	// Activity gear.
	{Name: "Swimsuit", Category: CategoryActivityGear, Activities: []ActivityTag{ActivitySwimming, ActivityBeach, ActivitySurfing}},
	{Name: "Swimming Goggles", Category: CategoryActivityGear, Activities: []ActivityTag{ActivitySwimming}},
	{Name: "Beach Towel", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityBeach, ActivitySwimming}},
	{Name: "Snorkel Set", Category: CategoryActivityGear, Activities: []ActivityTag{ActivitySwimming, ActivityBeach}},
	{Name: "Rash Guard", Category: CategoryActivityGear, Activities: []ActivityTag{ActivitySurfing, ActivitySwimming}},
	{Name: "Hiking Poles", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityHiking}},
	{Name: "Tent", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityCamping}},
	{Name: "Sleeping Bag", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityCamping}},
	{Name: "Camping Stove", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityCamping}},
	{Name: "Headlamp", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityCamping, ActivityHiking}},
	{Name: "Climbing Shoes", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityRockClimbing}},
	{Name: "Climbing Harness", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityRockClimbing}},
	{Name: "Chalk Bag", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityRockClimbing}},
	{Name: "Ski Jacket", Category: CategoryActivityGear, Activities: []ActivityTag{ActivitySkiing}, Climates: []ClimateTag{ClimateCold}},
	{Name: "Ski Goggles", Category: CategoryActivityGear, Activities: []ActivityTag{ActivitySkiing}},
	{Name: "Ski Gloves", Category: CategoryActivityGear, Activities: []ActivityTag{ActivitySkiing}, Climates: []ClimateTag{ClimateCold}},
	{Name: "Cycling Helmet", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityCycling}},
	{Name: "Cycling Shorts", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityCycling}},
	{Name: "Running Gear", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityRunning}},
	{Name: "Yoga Mat", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityYoga}},
	{Name: "Golf Clubs", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityGolf}},
	{Name: "Golf Shoes", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityGolf}},
	{Name: "Fishing Rod", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityFishing}},
	{Name: "Fishing Tackle Box", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityFishing}},
	{Name: "Backpack Rain Cover", Category: CategoryActivityGear, Activities: []ActivityTag{ActivityHiking, ActivityCamping}},
}

// Catalog returns a copy of the built-in candidate item table.
func Catalog() []CatalogItem {
	out := make([]CatalogItem, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}
