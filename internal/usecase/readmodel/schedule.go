package readmodel

// ScheduleWindow is one recurring weekly window, either business hours or
// a break. Weekday numbering is 1=Monday through 7=Sunday; StartMin/EndMin
// are minutes of the local day.
type ScheduleWindow struct {
	DayOfWeek int
	StartMin  int
	EndMin    int
	Enabled   bool
}

type Blackout struct {
	DateKey string
	Reason  *string
}

type ScheduleConfig struct {
	Hours     []ScheduleWindow
	Breaks    []ScheduleWindow
	Blackouts []Blackout
}
