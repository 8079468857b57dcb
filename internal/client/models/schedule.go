package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Weekday uses the JavaScript numbering the API speaks: 0 is Sunday.
type Weekday int

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// WeekOrder is the Monday-first order the schedule is displayed in.
var WeekOrder = []Weekday{1, 2, 3, 4, 5, 6, 0}

func (d Weekday) Valid() bool { return d >= 0 && int(d) < len(weekdayNames) }

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// UnmarshalJSON accepts 3 as well as "3".
func (d *Weekday) UnmarshalJSON(b []byte) error {
	var s FlexString
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = 0
		return nil
	}
	n, err := strconv.Atoi(string(s))
	if err != nil {
		return fmt.Errorf("weekday %q: %w", s, err)
	}
	*d = Weekday(n)
	return nil
}

// ParseWeekday accepts a number 0..6 or a day name (full or three-letter,
// any case).
func ParseWeekday(s string) (Weekday, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		d := Weekday(n)
		return d, d.Valid()
	}
	for i, name := range weekdayNames {
		if equalPrefixFold(name, s) {
			return Weekday(i), true
		}
	}
	return 0, false
}

// ScheduleSlot is a recurring weekly posting time.
type ScheduleSlot struct {
	ID        FlexString `json:"id"`
	DayOfWeek Weekday    `json:"day_of_week"`
	TimeOfDay string     `json:"time_of_day"`
}

// Option is one entry of a server-provided select list.
type Option struct {
	Value FlexString `json:"value"`
	Label string     `json:"label"`
}

// ScheduleOptions lists the days and hours a post can be scheduled for.
type ScheduleOptions struct {
	Days     []Option `json:"days"`
	Hours    []Option `json:"hours"`
	Timezone string   `json:"timezone"`
}

// GroupByWeekday buckets slots per day, each bucket sorted by time of day.
// Slots with an out-of-range day are dropped.
func GroupByWeekday(slots []ScheduleSlot) map[Weekday][]ScheduleSlot {
	groups := make(map[Weekday][]ScheduleSlot, len(weekdayNames))
	for _, s := range slots {
		if !s.DayOfWeek.Valid() {
			continue
		}
		groups[s.DayOfWeek] = append(groups[s.DayOfWeek], s)
	}
	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool { return g[i].TimeOfDay < g[j].TimeOfDay })
	}
	return groups
}
