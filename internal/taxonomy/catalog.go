package taxonomy

// Behavior attribute flags carried by some categories. Downstream jobs check
// these before generating findings or notifications.
const (
	AttrSkipWeeklyFinding      = "skip_weekly_finding"
	AttrSkipMonthlyFinding     = "skip_monthly_finding"
	AttrSkipWeekMonthNotify    = "skip_week_month_spend_notify"
	AttrSkipUrgencyScore       = "skip_urgency_score"
	AttrSkipForecast           = "skip_forecast"
)

// topLevelIDs lists the budget dashboard groupings, in display order.
var topLevelIDs = []int{TopLevelFood, TopLevelOthers, TopLevelBills, TopLevelShopping, TopLevelIncome}

// Top-level category ids.
const (
	TopLevelFood     = 41
	TopLevelOthers   = 42
	TopLevelBills    = 43
	TopLevelShopping = 44
	TopLevelIncome   = 46
)

// topLevelMembers maps each top-level category to the mid-level categories
// counted under it on budget dashboards. Transfer (45) is intentionally
// absent: transfers are excluded from budgets.
var topLevelMembers = map[int][]int{
	TopLevelFood:     {1, 2, 3, 4},
	TopLevelOthers:   {5, 6, 7, 18, 19, 25, 27, 28, 29, 30, 31, 32, 33, Uncategorized},
	TopLevelBills:    {9, 10, 11, 12, 13, 14, 15, 16, 17, 20, 26},
	TopLevelShopping: {21, 22, 23, 24, 8},
	TopLevelIncome:   {47, 36, 37, 38, 39},
}

// parentIDs lists the mid-level categories, in the order the source system
// enumerates them.
var parentIDs = []int{Uncategorized, 1, 5, 9, 14, 18, 21, 25, 28, 32, 45, 47}

// parentChildren maps each parent to its child categories. A parent with no
// sub-split lists itself as its single entry; ChildrenOf strips the
// self-reference.
var parentChildren = map[int][]int{
	Uncategorized: {Uncategorized},
	1:             {1, 2, 3, 4},
	5:             {5, 6, 7},
	9:             {9, 10, 11, 12, 13},
	14:            {14, 15, 16, 17},
	18:            {18, 19, 20},
	21:            {21, 22, 23, 24, 8},
	25:            {25, 26, 27},
	28:            {28, 29, 30, 31},
	32:            {32},
	33:            {33},
	45:            {45},
	47:            {36, 37, 38, 39},
}

// discretionaryIDs are the categories counted as discretionary spending.
var discretionaryIDs = []int{44, 21, 22, 23, 24, 8, 41, 1, 2, 3, 4}

// catalog is the full category reference table. Order matters for name
// lookups: when two categories share a display name ("Bills", "Shopping",
// "Income"), the later entry wins, matching the source system.
var catalog = []Category{
	{
		ID:          Uncategorized,
		DisplayName: "Uncategorized",
		SortKey:     570,
		Attributes:  []string{AttrSkipWeeklyFinding, AttrSkipMonthlyFinding, AttrSkipWeekMonthNotify},
	},
	{
		ID:          1,
		DisplayName: "Meals",
		SortKey:     310,
		Attributes:  []string{AttrSkipWeeklyFinding, AttrSkipMonthlyFinding},
	},
	{
		ID:            2,
		DisplayName:   "Dining Out",
		QualifiedName: "Meals: Dining Out",
		SortKey:       311,
		PrimaryExpansions: []string{
			"diners, pubs, and fast-food",
			"restaurants & coffee shops",
		},
		SecondaryExpansions: []string{
			"leisure food and non-grocery food",
			"date night dining",
			"social eating and celebrations",
			"baby food and snacks",
			"bread shop & patisserie",
		},
	},
	{
		ID:            3,
		DisplayName:   "Delivered Food",
		QualifiedName: "Meals: Delivered Food",
		SortKey:       312,
		PrimaryExpansions: []string{
			"food delivery service and apps",
			"virtual kitchen & online food orders",
		},
		SecondaryExpansions: []string{
			"takeout and delivery costs",
		},
	},
	{
		ID:            4,
		DisplayName:   "Groceries",
		QualifiedName: "Meals: Groceries",
		SortKey:       313,
		PrimaryExpansions: []string{
			"cooking supplies and ingredients",
			"groceries & supermarket",
		},
		SecondaryExpansions: []string{
			"meat, poultry, produce and frozen foods",
			"fruits and vegetables",
			"pantry staples, snacks and beverages",
		},
	},
	{
		ID:          5,
		DisplayName: "Leisure",
		SortKey:     510,
	},
	{
		ID:            6,
		DisplayName:   "Entertainment",
		QualifiedName: "Leisure: Entertainment",
		SortKey:       511,
		PrimaryExpansions: []string{
			"indoor and outdoor entertainment & recreation",
			"movies, concerts and event tickets",
		},
		SecondaryExpansions: []string{
			"live performance & concerts",
			"festivals, theme parks and interactive entertainment venues",
			"streaming services and games",
			"alcohol, cannabis and cigarettes",
			"fiction books & magazines and other literature",
			"personal hobbies and crafts supplies",
		},
	},
	{
		ID:            7,
		DisplayName:   "Travel & Vacations",
		QualifiedName: "Leisure: Travel & Vacations",
		SortKey:       512,
		PrimaryExpansions: []string{
			"activity & excursion fund",
			"trip insurance and incidentals",
			"travel & vacations",
		},
		SecondaryExpansions: []string{
			"excursions and trip stash",
			"sightseeing and on-the-road spending",
			"cultural immersion, relaxation and rejuvenation trips",
			"passport & visa fees",
			"journey and exploration gear",
		},
	},
	{
		ID:          9,
		DisplayName: "Bills",
		SortKey:     220,
	},
	{
		ID:            10,
		DisplayName:   "Connectivity",
		QualifiedName: "Bills: Connectivity",
		SortKey:       221,
		PrimaryExpansions: []string{
			"phone and internet bills",
			"satellite and other connectivity",
		},
		SecondaryExpansions: []string{
			"phone and mobile plan",
			"internet costs & mobile data",
			"social media spending",
		},
	},
	{
		ID:            11,
		DisplayName:   "Insurance",
		QualifiedName: "Bills: Insurance",
		SortKey:       222,
		Attributes:    []string{AttrSkipWeeklyFinding, AttrSkipMonthlyFinding, AttrSkipWeekMonthNotify},
		PrimaryExpansions: []string{
			"life insurance and other insurance",
			"business insurance",
		},
	},
	{
		ID:            12,
		DisplayName:   "Taxes",
		QualifiedName: "Bills: Taxes",
		SortKey:       223,
		Attributes:    []string{AttrSkipWeeklyFinding, AttrSkipMonthlyFinding, AttrSkipWeekMonthNotify},
		PrimaryExpansions: []string{
			"local, state and federal taxes",
			"business taxes and penalties",
		},
	},
	{
		ID:            13,
		DisplayName:   "Service Fees",
		QualifiedName: "Bills: Service Fees",
		SortKey:       224,
		Attributes:    []string{AttrSkipWeeklyFinding, AttrSkipWeekMonthNotify},
		PrimaryExpansions: []string{
			"professional service fees and administrative costs",
		},
		SecondaryExpansions: []string{
			"personal assistant and secretariat services",
			"laundry & household services",
		},
	},
	{
		ID:          14,
		DisplayName: "Shelter",
		SortKey:     210,
	},
	{
		ID:            15,
		DisplayName:   "Home",
		QualifiedName: "Shelter: Home",
		SortKey:       211,
		Attributes:    []string{AttrSkipWeeklyFinding},
		PrimaryExpansions: []string{
			"homeowners insurance & property tax",
			"mortgage or rentals",
		},
		SecondaryExpansions: []string{
			"home association dues and county tax",
		},
	},
	{
		ID:            16,
		DisplayName:   "Utilities",
		QualifiedName: "Shelter: Utilities",
		SortKey:       212,
		PrimaryExpansions: []string{
			"water, electric and gas utilities",
		},
		SecondaryExpansions: []string{
			"water & electricity",
			"natural gas billings",
			"sewage maintenance costs",
		},
	},
	{
		ID:            17,
		DisplayName:   "Upkeep",
		QualifiedName: "Shelter: Upkeep",
		SortKey:       213,
		PrimaryExpansions: []string{
			"home improvement & home repair services",
			"gardening, home cleaning and hvac upkeep",
		},
		SecondaryExpansions: []string{
			"furnitures and appliances",
			"bedroom and furnishings",
		},
	},
	{
		ID:          18,
		DisplayName: "Education",
		SortKey:     530,
	},
	{
		ID:            19,
		DisplayName:   "Kids Activities",
		QualifiedName: "Education: Kids Activities",
		SortKey:       531,
		PrimaryExpansions: []string{
			"youth education, recreation and after-school activities",
			"sports and extra-curricular classes",
		},
		SecondaryExpansions: []string{
			"summer camps and sports events",
			"educational child care and lessons",
			"summer camps and sports events",
		},
	},
	{
		ID:            20,
		DisplayName:   "Tuition",
		QualifiedName: "Education: Tuition",
		SortKey:       241,
		PrimaryExpansions: []string{
			"private and college tuition and lodging",
			"school supplies and academic fees",
		},
		SecondaryExpansions: []string{
			"testing/examination, enrollment and registration fees",
			"school textbooks, course materials and supplies",
			"online learning or tutoring",
			"higher education funds",
		},
	},
	{
		ID:          21,
		DisplayName: "Shopping",
		SortKey:     410,
		Attributes:  []string{AttrSkipWeeklyFinding, AttrSkipMonthlyFinding},
	},
	{
		ID:            22,
		DisplayName:   "Clothing",
		QualifiedName: "Shopping: Clothing",
		SortKey:       411,
		PrimaryExpansions: []string{
			"clothing, shoes, fashion and jewelery",
			"attire, wardrobe shopping and accessories",
		},
		SecondaryExpansions: []string{
			"seasonal winter or summer clothes and rentals",
			"undergarments and hats",
		},
	},
	{
		ID:            23,
		DisplayName:   "Gadgets",
		QualifiedName: "Shopping: Gadgets",
		SortKey:       412,
		Attributes:    []string{AttrSkipWeeklyFinding, AttrSkipWeekMonthNotify},
		PrimaryExpansions: []string{
			"phones, gadgets and electronic devices",
			"cameras, drones and tech devices",
		},
		SecondaryExpansions: []string{
			"electronic device rental and repair",
			"laptops, camera and accessories",
			"speakers, headphones and smart devices",
			"sleep and fitness trackers and electronic equipment",
		},
	},
	{
		ID:            24,
		DisplayName:   "Kids",
		QualifiedName: "Shopping: Kids",
		SortKey:       413,
		PrimaryExpansions: []string{
			"kids clothing, shoes and kids fashion",
			"kids toys and games",
		},
		SecondaryExpansions: []string{
			"infant clothing, diapers and sanitary items",
		},
	},
	{
		ID:            8,
		DisplayName:   "Pets",
		QualifiedName: "Shopping: Pets",
		SortKey:       414,
		PrimaryExpansions: []string{
			"pets and animal food & supplies",
			"veterinarian and pet insurance costs",
		},
		SecondaryExpansions: []string{
			"pet clothing, toys and accessories",
			"pet daycare, walkers and pet services",
		},
	},
	{
		ID:          25,
		DisplayName: "Transport",
		SortKey:     540,
	},
	{
		ID:            26,
		DisplayName:   "Car & Fuel",
		QualifiedName: "Transport: Car & Fuel",
		SortKey:       541,
		PrimaryExpansions: []string{
			"car insurance, upkeep, maintenance and repairs",
			"car fuel, gasoline/diesel or charging",
			"car parking and tolls",
		},
		SecondaryExpansions: []string{
			"auto insurance, licensing, registration and fees",
			"car accessories & modifications",
			"electric vehicle charging fees",
		},
	},
	{
		ID:            27,
		DisplayName:   "Public Transit",
		QualifiedName: "Transport: Public Transit",
		SortKey:       231,
		PrimaryExpansions: []string{
			"commute and public transit",
			"taxis, ubers and ride hailing apps",
		},
		SecondaryExpansions: []string{
			"bus, taxi, subway and metro fares",
			"shuttle and commute passes",
		},
	},
	{
		ID:          28,
		DisplayName: "Health",
		SortKey:     550,
		Attributes:  []string{AttrSkipWeeklyFinding, AttrSkipWeekMonthNotify},
	},
	{
		ID:            29,
		DisplayName:   "Medical & Pharmacy",
		QualifiedName: "Health: Medical & Pharmacy",
		SortKey:       551,
		Attributes:    []string{AttrSkipWeeklyFinding, AttrSkipWeekMonthNotify},
		PrimaryExpansions: []string{
			"doctors, hospital and ambulance fees",
			"health, vision and dental insurance and appointment copays",
			"pharmacy and drug copays and over-the-counter medicine",
		},
		SecondaryExpansions: []string{
			"doctor consultation, hospital fees and health insurance",
			"maintenance medications, therapy, and counselling",
			"hospital, oral and eye care",
			"diagnostic tests, physicals and mental health",
		},
	},
	{
		ID:            30,
		DisplayName:   "Gym & Wellness",
		QualifiedName: "Health: Gym & Wellness",
		SortKey:       552,
		PrimaryExpansions: []string{
			"fitness gym and spa memberships",
			"workout classes, pilates and yoga sessions",
		},
		SecondaryExpansions: []string{
			"personal trainors and wellness services",
			"retreats, spas and saunas",
		},
	},
	{
		ID:            31,
		DisplayName:   "Personal Care",
		QualifiedName: "Health: Personal Care",
		SortKey:       553,
		PrimaryExpansions: []string{
			"hygiene, grooming and cosmetics",
			"hair-cuts, manicures",
		},
		SecondaryExpansions: []string{
			"waxing, tanning salons and make-up grooming",
			"cosmetic enhancements",
		},
	},
	{
		ID:            32,
		DisplayName:   "Donations & Gifts",
		QualifiedName: "Donations & Gifts",
		SortKey:       560,
		Attributes:    []string{AttrSkipWeeklyFinding, AttrSkipWeekMonthNotify},
		PrimaryExpansions: []string{
			"gifts, donations and tokens",
			"holiday fund-raisers and sponsorships",
		},
		SecondaryExpansions: []string{
			"celebratory presents, tokens to others",
			"charities, fundraisers and religious contributions",
		},
	},
	{
		ID:            33,
		DisplayName:   "Miscellaneous",
		QualifiedName: "Miscellaneous",
		SortKey:       570,
		PrimaryExpansions: []string{
			"--matches nothing--",
		},
	},
	{
		ID:          41,
		DisplayName: "Food",
		SortKey:     300,
	},
	{
		ID:          42,
		DisplayName: "Others",
		SortKey:     500,
		Attributes:  []string{AttrSkipWeeklyFinding, AttrSkipMonthlyFinding, AttrSkipWeekMonthNotify, AttrSkipUrgencyScore},
	},
	{
		ID:          43,
		DisplayName: "Bills",
		SortKey:     200,
		Attributes:  []string{AttrSkipWeeklyFinding, AttrSkipMonthlyFinding, AttrSkipWeekMonthNotify, AttrSkipUrgencyScore},
	},
	{
		ID:          44,
		DisplayName: "Shopping",
		SortKey:     400,
	},
	{
		ID:            45,
		DisplayName:   "Transfer",
		QualifiedName: "Transfer",
		SortKey:       600,
		Attributes:    []string{AttrSkipWeeklyFinding, AttrSkipMonthlyFinding, AttrSkipWeekMonthNotify, AttrSkipForecast},
	},
	{
		ID:          46,
		DisplayName: "Income",
		SortKey:     100,
		IsIncome:    true,
	},
	{
		ID:          47,
		DisplayName: "Income",
		SortKey:     110,
		IsIncome:    true,
		Attributes:  []string{AttrSkipWeeklyFinding, AttrSkipMonthlyFinding},
	},
	{
		ID:            36,
		DisplayName:   "Salary",
		QualifiedName: "Income: Salary",
		SortKey:       111,
		IsIncome:      true,
		PrimaryExpansions: []string{
			"salary or regular hourly wage",
		},
		SecondaryExpansions: []string{
			"part-time work",
		},
	},
	{
		ID:            37,
		DisplayName:   "Side-Gig",
		QualifiedName: "Income: Side-Gig",
		SortKey:       112,
		IsIncome:      true,
		PrimaryExpansions: []string{
			"freelance work or extra income",
		},
		SecondaryExpansions: []string{
			"online selling, tutoring income",
		},
	},
	{
		ID:            38,
		DisplayName:   "Business",
		QualifiedName: "Income: Business",
		SortKey:       113,
		IsIncome:      true,
		Attributes:    []string{AttrSkipWeeklyFinding, AttrSkipWeekMonthNotify},
		PrimaryExpansions: []string{
			"business profits, income and spending",
		},
		SecondaryExpansions: []string{
			"business compliance and professional services",
			"business operating costs",
		},
	},
	{
		ID:            39,
		DisplayName:   "Interest",
		QualifiedName: "Income: Interest",
		SortKey:       114,
		IsIncome:      true,
		PrimaryExpansions: []string{
			"savings and investment interest appreciation",
		},
		SecondaryExpansions: []string{
			"dividends, capital gains and interest distributions",
		},
	},
}
