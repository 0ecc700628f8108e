package schedule

// SlotMinutes enumerates the candidate start minutes of a business day:
// every step from OpenMinute up to but excluding CloseMinute, skipping the
// midday closure. Pure function of the step; strictly increasing.
func SlotMinutes(stepMinutes int) ([]int, error) {
	if stepMinutes <= 0 {
		return nil, ErrInvalidStep
	}

	slots := make([]int, 0, (CloseMinute-OpenMinute)/stepMinutes)
	for current := OpenMinute; current < CloseMinute; current += stepMinutes {
		if current >= ClosureStart && current < ClosureEnd {
			continue
		}
		slots = append(slots, current)
	}
	return slots, nil
}

// OnGrid reports whether startMinute is one of the candidate starts that
// SlotMinutes would enumerate for the given step: inside open hours, outside
// the midday closure and aligned to the grid. A non-positive step falls back
// to DefaultStep.
func OnGrid(startMinute, stepMinutes int) bool {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStep
	}
	if startMinute < OpenMinute || startMinute >= CloseMinute {
		return false
	}
	if startMinute >= ClosureStart && startMinute < ClosureEnd {
		return false
	}
	return (startMinute-OpenMinute)%stepMinutes == 0
}

// Slots is SlotMinutes rendered as "HH:MM" strings.
func Slots(stepMinutes int) ([]string, error) {
	minutes, err := SlotMinutes(stepMinutes)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(minutes))
	for i, m := range minutes {
		out[i] = FormatMinuteOfDay(m)
	}
	return out, nil
}
