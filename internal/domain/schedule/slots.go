package schedule

// SlotInput carries everything needed to enumerate bookable start times on
// one local day. All interval sets are minute intervals of that day.
type SlotInput struct {
	OpenWindows        []MinuteInterval
	BreakWindows       []MinuteInterval
	BookedWindows      []MinuteInterval
	StepMin            int
	ServiceDurationMin int
	ServiceBufferMin   int
}

// GenerateSlots returns the HH:MM start times at which the service's full
// busy length (duration + trailing buffer) fits inside an open window that
// is not consumed by breaks or existing bookings. Candidates are aligned
// to StepMin, rounding the window start up, and the result is time-ordered
// and duplicate-free by construction.
func GenerateSlots(in SlotInput) []string {
	busyLen := in.ServiceDurationMin + in.ServiceBufferMin
	if busyLen <= 0 || in.StepMin <= 0 {
		return nil
	}

	free := Subtract(Subtract(in.OpenWindows, in.BreakWindows), in.BookedWindows)

	var slots []string
	for _, w := range free {
		first := ((w.StartMin + in.StepMin - 1) / in.StepMin) * in.StepMin
		for start := first; start+busyLen <= w.EndMin; start += in.StepMin {
			slots = append(slots, FormatTime(start))
		}
	}
	return slots
}
