package model

type CalendarCell struct {
	Day      int    `json:"day,omitempty"`
	Date     string `json:"date,omitempty"`
	Blank    bool   `json:"blank,omitempty"`
	Today    bool   `json:"today,omitempty"`
	HasEvent bool   `json:"has_event,omitempty"`
}

type CalendarMonthResponse struct {
	Year       int            `json:"year"`
	Month      int            `json:"month"`
	Label      string         `json:"label"`
	HijriLabel string         `json:"hijri_label"`
	Cells      []CalendarCell `json:"cells"`
}
