package domain

// Flights is the fixed outbound/inbound pair shown on the home tab.
var Flights = []Flight{
	{Direction: "outbound", Date: "6/19 (Fri)", DepTime: "22:50", ArrTime: "05:55", From: "NGO", To: "HEL", FlightNo: "AY0080", Duration: "13h 05m"},
	{Direction: "inbound", Date: "6/28 (Sun)", DepTime: "00:45", ArrTime: "19:35", From: "HEL", To: "NGO", FlightNo: "AY0079", Duration: "12h 50m"},
}

// SeedItems returns the starter packing checklist written when no trip
// document exists yet. Callers own the returned slice.
func SeedItems() []PackingItem {
	return []PackingItem{
		{ID: "1", Text: "パスポート", Checked: false, Category: ItemEssential},
		{ID: "2", Text: "クレジットカード", Checked: false, Category: ItemEssential},
		{ID: "3", Text: "変換プラグ (Cタイプ)", Checked: false, Category: ItemElectronics},
	}
}

// SeedSpots returns the starter wish list.
func SeedSpots() []Spot {
	return []Spot{
		{ID: "1", Title: "Marimekko本社", Category: SpotShopping, Description: "社員食堂でランチ！", ImageColor: "bg-red-400", Links: []LinkItem{}},
		{ID: "2", Title: "ヘルシンキ大聖堂", Category: SpotSightseeing, Description: "白い大聖堂", ImageColor: "bg-blue-400", Links: []LinkItem{}},
	}
}

// SeedSchedule returns the fixed ten-day itinerary skeleton for the
// 6/19–6/28 date range. Day slots are immutable positions; only their
// content moves afterwards.
func SeedSchedule() []ScheduleDay {
	return []ScheduleDay{
		{ID: "d1", Date: "6/19", DayOfWeek: "Fri", Title: "出発", IconType: IconPlane, Content: "セントレア発！", Events: []ScheduleEvent{}},
		{ID: "d2", Date: "6/20", DayOfWeek: "Sat", Title: "到着", IconType: IconMap, Content: "早朝到着。荷物を預けて散策。", Events: []ScheduleEvent{}},
		{ID: "d3", Date: "6/21", DayOfWeek: "Sun", Title: "マリメッコ", IconType: IconShopping, Content: "ショッピングDay", Events: []ScheduleEvent{}},
		{ID: "d4", Date: "6/22", DayOfWeek: "Mon", Title: "タリン", IconType: IconLuggage, Content: "フェリーでエストニアへ", Events: []ScheduleEvent{}},
		{ID: "d5", Date: "6/23", DayOfWeek: "Tue", Title: "サウナ", IconType: IconSun, Content: "Löylyでととのう", Events: []ScheduleEvent{}},
		{ID: "d6", Date: "6/24", DayOfWeek: "Wed", Title: "美術館", IconType: IconCamera, Content: "アート巡り", Events: []ScheduleEvent{}},
		{ID: "d7", Date: "6/25", DayOfWeek: "Thu", Title: "お土産", IconType: IconShopping, Content: "スーパーで買い出し", Events: []ScheduleEvent{}},
		{ID: "d8", Date: "6/26", DayOfWeek: "Fri", Title: "カフェ", IconType: IconCoffee, Content: "のんびり過ごす", Events: []ScheduleEvent{}},
		{ID: "d9", Date: "6/27", DayOfWeek: "Sat", Title: "最終日", IconType: IconHeart, Content: "最後のディナー", Events: []ScheduleEvent{}},
		{ID: "d10", Date: "6/28", DayOfWeek: "Sun", Title: "帰国", IconType: IconPlane, Content: "機内泊〜帰宅", Events: []ScheduleEvent{}},
	}
}

// SeedExpenses returns the sample ledger entry.
func SeedExpenses() []Expense {
	return []Expense{
		{ID: "e1", Title: "航空券", Amount: 260000, Currency: CurrencyJPY, Payer: PayerMisaki, Method: MethodCreditCard, Category: ExpenseTicket, Date: "2026-01-10"},
	}
}
