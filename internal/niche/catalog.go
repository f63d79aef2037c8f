package niche

func init() {
	register(janitorial)
	register(safety)
	register(b2b)
}

var janitorial = &Niche{
	Key:   "janitor",
	Label: "Janitorial/Cleaning Supplier",
	Pitch: "Online ordering portal for recurring cleaning supply orders",
	Terms: []SearchTerm{
		{Slug: "janitorial-supplies"},
		{Slug: "janitorial-equipment-supplies"},
		{Slug: "cleaning-supplies"},
		{Slug: "cleaning-equipment-supplies"},
		{Slug: "sanitation-supplies"},
		{Slug: "paper-products-wholesale"},
		{Slug: "commercial-cleaning-supplies"},
		{Slug: "floor-care-supplies"},
		{Slug: "restroom-supplies"},
	},
	Locations: []string{
		// NYC boroughs
		"queens-ny", "brooklyn-ny", "bronx-ny", "staten-island-ny",
		// Queens industrial
		"long-island-city-ny", "maspeth-ny", "jamaica-ny", "college-point-ny",
		// Brooklyn industrial
		"sunset-park-brooklyn-ny", "red-hook-brooklyn-ny", "east-new-york-brooklyn-ny",
		// Bronx industrial
		"hunts-point-bronx-ny", "port-morris-bronx-ny", "south-bronx-ny",
		// Long Island
		"long-island-ny", "nassau-county-ny", "suffolk-county-ny", "hauppauge-ny",
		"farmingdale-ny", "hicksville-ny", "westbury-ny",
		// Westchester / Hudson Valley
		"westchester-county-ny", "yonkers-ny", "white-plains-ny", "mount-vernon-ny",
		// New Jersey
		"newark-nj", "jersey-city-nj", "elizabeth-nj", "edison-nj", "paterson-nj",
		"clifton-nj", "passaic-nj", "union-nj", "secaucus-nj", "kearny-nj",
		"linden-nj", "perth-amboy-nj", "new-brunswick-nj", "middlesex-county-nj",
		"bergen-county-nj", "essex-county-nj", "hudson-county-nj",
		// Connecticut
		"stamford-ct", "bridgeport-ct", "new-haven-ct", "hartford-ct",
		"waterbury-ct", "norwalk-ct", "fairfield-county-ct",
	},
	Tracking: TrackingStatus,
}

var safety = &Niche{
	Key:   "safety",
	Label: "Industrial Safety Supplier",
	Pitch: "B2B catalog with compliance docs and account pricing",
	Terms: []SearchTerm{
		{Slug: "safety-equipment-supplies"},
		{Slug: "industrial-safety-equipment"},
		{Slug: "personal-protective-equipment"},
		{Slug: "ppe-supplies"},
		{Slug: "industrial-supplies"},
		{Slug: "welding-supplies"},
		{Slug: "industrial-equipment-supplies"},
		{Slug: "fire-protection-equipment"},
		{Slug: "first-aid-supplies"},
	},
	Locations: []string{
		"queens-ny", "brooklyn-ny", "bronx-ny", "staten-island-ny",
		"long-island-city-ny", "maspeth-ny", "jamaica-ny", "college-point-ny",
		"sunset-park-brooklyn-ny", "red-hook-brooklyn-ny", "east-new-york-brooklyn-ny",
		"hunts-point-bronx-ny", "port-morris-bronx-ny", "south-bronx-ny",
		"long-island-ny", "nassau-county-ny", "suffolk-county-ny", "hauppauge-ny",
		"farmingdale-ny", "hicksville-ny", "westbury-ny",
		"westchester-county-ny", "yonkers-ny", "white-plains-ny",
		"newark-nj", "jersey-city-nj", "elizabeth-nj", "edison-nj",
		"paterson-nj", "clifton-nj", "union-nj", "secaucus-nj", "kearny-nj",
		"linden-nj", "perth-amboy-nj", "new-brunswick-nj",
		"middlesex-county-nj", "bergen-county-nj", "essex-county-nj",
		"stamford-ct", "bridgeport-ct", "new-haven-ct", "hartford-ct", "norwalk-ct",
	},
	Tracking: TrackingStatus,
}

var b2b = &Niche{
	Key:   "b2b",
	Label: "B2B Wholesaler/Warehouse",
	Pitch: "Order management, invoicing, and inventory systems",
	Terms: []SearchTerm{
		// Core wholesale/distribution
		{Slug: "wholesale", Label: "Wholesale"},
		{Slug: "wholesalers", Label: "Wholesaler"},
		{Slug: "wholesale-distributors", Label: "Wholesale Distributor"},
		{Slug: "distributors", Label: "Distributor"},
		{Slug: "distribution-services", Label: "Distribution Services"},
		// Warehousing
		{Slug: "warehouses", Label: "Warehouse"},
		{Slug: "warehouse-storage", Label: "Warehouse Storage"},
		{Slug: "warehousing", Label: "Warehousing"},
		{Slug: "public-warehouses", Label: "Public Warehouse"},
		{Slug: "cold-storage", Label: "Cold Storage"},
		// Import/export
		{Slug: "importers", Label: "Importer"},
		{Slug: "exporters", Label: "Exporter"},
		{Slug: "import-export", Label: "Import/Export"},
		{Slug: "freight-forwarding", Label: "Freight Forwarding"},
		{Slug: "customs-brokers", Label: "Customs Broker"},
		// Manufacturing and industrial
		{Slug: "manufacturers", Label: "Manufacturer"},
		{Slug: "manufacturing", Label: "Manufacturing"},
		{Slug: "industrial-equipment", Label: "Industrial Equipment"},
		{Slug: "packaging-materials-equipment", Label: "Packaging"},
		// Food/beverage wholesale
		{Slug: "food-brokers", Label: "Food Broker"},
		{Slug: "food-products-wholesale", Label: "Food Wholesale"},
		{Slug: "beverage-distributors", Label: "Beverage Distributor"},
		{Slug: "grocery-wholesale", Label: "Grocery Wholesale"},
		{Slug: "meat-wholesale", Label: "Meat Wholesale"},
		{Slug: "produce-wholesale", Label: "Produce Wholesale"},
		{Slug: "seafood-wholesale", Label: "Seafood Wholesale"},
		// Building/construction supplies
		{Slug: "building-materials", Label: "Building Materials"},
		{Slug: "lumber-wholesale", Label: "Lumber Wholesale"},
		{Slug: "plumbing-supplies-wholesale", Label: "Plumbing Supplies"},
		{Slug: "electrical-supplies-wholesale", Label: "Electrical Supplies"},
		{Slug: "hardware-wholesale", Label: "Hardware Wholesale"},
		// Other B2B
		{Slug: "paper-products-wholesale", Label: "Paper Products"},
		{Slug: "janitorial-supplies", Label: "Janitorial Supplies"},
		{Slug: "restaurant-equipment-supplies", Label: "Restaurant Equipment"},
		{Slug: "beauty-supplies-wholesale", Label: "Beauty Supplies"},
		{Slug: "clothing-wholesale", Label: "Clothing Wholesale"},
		{Slug: "auto-parts-wholesale", Label: "Auto Parts Wholesale"},
		{Slug: "electronics-wholesale", Label: "Electronics Wholesale"},
		{Slug: "medical-equipment-supplies", Label: "Medical Supplies"},
		{Slug: "office-supplies-wholesale", Label: "Office Supplies"},
		// Logistics
		{Slug: "logistics", Label: "Logistics"},
		{Slug: "fulfillment-services", Label: "Fulfillment Services"},
		{Slug: "third-party-logistics", Label: "3PL"},
		{Slug: "supply-chain", Label: "Supply Chain"},
	},
	Locations: []string{
		// Main boroughs
		"queens-ny", "brooklyn-ny", "bronx-ny", "manhattan-ny", "staten-island-ny",
		// Queens industrial/commercial
		"long-island-city-ny", "maspeth-ny", "jamaica-ny", "flushing-ny",
		"astoria-ny", "woodside-ny", "ridgewood-ny", "college-point-ny", "ozone-park-ny",
		// Brooklyn industrial
		"sunset-park-brooklyn-ny", "red-hook-brooklyn-ny", "bushwick-brooklyn-ny",
		"east-new-york-brooklyn-ny", "greenpoint-brooklyn-ny", "williamsburg-brooklyn-ny",
		"industry-city-brooklyn-ny", "brooklyn-navy-yard-ny", "canarsie-brooklyn-ny",
		// Bronx industrial
		"hunts-point-bronx-ny", "port-morris-bronx-ny", "mott-haven-bronx-ny",
		"south-bronx-ny", "fordham-bronx-ny",
		// Manhattan commercial
		"chelsea-ny", "tribeca-ny", "lower-manhattan-ny", "garment-district-ny",
		"meatpacking-district-ny",
		// Nearby NJ
		"jersey-city-nj", "newark-nj", "elizabeth-nj", "secaucus-nj", "kearny-nj",
	},
	Tracking: TrackingCheckboxes,
}
