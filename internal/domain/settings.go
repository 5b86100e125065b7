package domain

// Settings is the single shop-wide configuration record. WorkDays holds
// day-of-week indexes (0 = Sunday .. 6 = Saturday); an empty set means the
// shop works every day, so a misconfiguration never hides the calendar.
type Settings struct {
	ShopName      string `json:"shopName"`
	ShopPhone     string `json:"shopPhone"`
	WorkStartTime string `json:"workStartTime"`
	WorkEndTime   string `json:"workEndTime"`
	WorkDays      []int  `json:"workDays"`
}

func DefaultSettings() Settings {
	return Settings{
		ShopName:      "Minha Barbearia",
		ShopPhone:     "",
		WorkStartTime: "08:00",
		WorkEndTime:   "20:00",
		WorkDays:      nil,
	}
}
