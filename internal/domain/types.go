// Package domain contains the core data types for the trip planner.
// It has no dependencies on storage or transport; every other internal
// package imports it.
package domain

// Tab identifies one of the five views of the planner.
type Tab string

const (
	TabHome     Tab = "home"
	TabSchedule Tab = "schedule"
	TabPacking  Tab = "packing"
	TabSpots    Tab = "spots"
	TabExpenses Tab = "expenses"
)

// ValidTab reports whether t is one of the five planner views.
func ValidTab(t Tab) bool {
	switch t {
	case TabHome, TabSchedule, TabPacking, TabSpots, TabExpenses:
		return true
	}
	return false
}

// ItemCategory classifies a packing item.
type ItemCategory string

const (
	ItemEssential   ItemCategory = "essential"
	ItemClothing    ItemCategory = "clothing"
	ItemBeauty      ItemCategory = "beauty"
	ItemElectronics ItemCategory = "electronics"
	ItemOther       ItemCategory = "other"
)

// ValidItemCategory reports whether c is one of the known packing categories.
func ValidItemCategory(c ItemCategory) bool {
	switch c {
	case ItemEssential, ItemClothing, ItemBeauty, ItemElectronics, ItemOther:
		return true
	}
	return false
}

// SpotCategory classifies a wish-list spot.
type SpotCategory string

const (
	SpotSightseeing SpotCategory = "sightseeing"
	SpotShopping    SpotCategory = "shopping"
	SpotFood        SpotCategory = "food"
	SpotCafe        SpotCategory = "cafe"
	SpotOther       SpotCategory = "other"
)

// ValidSpotCategory reports whether c is one of the known spot categories.
func ValidSpotCategory(c SpotCategory) bool {
	switch c {
	case SpotSightseeing, SpotShopping, SpotFood, SpotCafe, SpotOther:
		return true
	}
	return false
}

// IconType tags a schedule day with one of eight display icons.
type IconType string

const (
	IconPlane    IconType = "plane"
	IconMap      IconType = "map"
	IconShopping IconType = "shopping"
	IconLuggage  IconType = "luggage"
	IconSun      IconType = "sun"
	IconCamera   IconType = "camera"
	IconCoffee   IconType = "coffee"
	IconHeart    IconType = "heart"
)

// ValidIconType reports whether i is one of the eight day icons.
func ValidIconType(i IconType) bool {
	switch i {
	case IconPlane, IconMap, IconShopping, IconLuggage, IconSun, IconCamera, IconCoffee, IconHeart:
		return true
	}
	return false
}

// Currency is one of the two currencies expenses are recorded in.
type Currency string

const (
	CurrencyJPY Currency = "JPY"
	CurrencyEUR Currency = "EUR"
)

// Payer is one of the two fixed trip participants.
type Payer string

const (
	PayerMisaki Payer = "Misaki"
	PayerYutaro Payer = "Yutaro"
)

// PaymentMethod records how an expense was paid.
type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "Credit Card"
	MethodCashless   PaymentMethod = "Cashless"
	MethodCash       PaymentMethod = "Cash"
)

// ExpenseCategory classifies an expense entry.
type ExpenseCategory string

const (
	ExpenseFood      ExpenseCategory = "Food"
	ExpenseTransport ExpenseCategory = "Transport"
	ExpenseShopping  ExpenseCategory = "Shopping"
	ExpenseStay      ExpenseCategory = "Stay"
	ExpenseTicket    ExpenseCategory = "Ticket"
	ExpenseOther     ExpenseCategory = "Other"
)

// PackingItem is one entry on the packing checklist.
type PackingItem struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Checked  bool         `json:"checked"`
	Category ItemCategory `json:"category"`
}

// LinkItem is a titled URL attached to a spot.
type LinkItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Spot is one wish-list place, with an accent color tag and ordered links.
type Spot struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Category    SpotCategory `json:"category"`
	Description string       `json:"description"`
	ImageColor  string       `json:"imageColor"`
	Links       []LinkItem   `json:"links"`
}

// ScheduleEvent is a timed entry within one schedule day.
// Time is an "HH:MM" string; lexicographic order equals chronological
// order within a single day.
type ScheduleEvent struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Link        string `json:"link,omitempty"`
}

// ScheduleDay is one fixed slot of the itinerary. ID, Date and DayOfWeek
// never change; Title, IconType, Content and Events are the movable
// "content" that a day swap relocates.
type ScheduleDay struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	DayOfWeek string          `json:"dayOfWeek"`
	Title     string          `json:"title"`
	IconType  IconType        `json:"iconType"`
	Content   string          `json:"content"`
	Events    []ScheduleEvent `json:"events"`
}

// Expense is one shared-ledger entry.
type Expense struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   float64         `json:"amount"`
	Currency Currency        `json:"currency"`
	Payer    Payer           `json:"payer"`
	Method   PaymentMethod   `json:"method"`
	Category ExpenseCategory `json:"category"`
	Date     string          `json:"date"`
}

// Flight is static reference data shown on the home tab; not user-editable.
type Flight struct {
	Direction string `json:"direction"`
	Date      string `json:"date"`
	DepTime   string `json:"depTime"`
	ArrTime   string `json:"arrTime"`
	From      string `json:"from"`
	To        string `json:"to"`
	FlightNo  string `json:"flightNo"`
	Duration  string `json:"duration,omitempty"`
}
