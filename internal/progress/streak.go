package progress

import "time"

// dateLayout is the ISO calendar date format used for LastPracticeDate.
// Time of day is deliberately discarded: streaks count calendar days,
// not 24-hour windows.
const dateLayout = "2006-01-02"

// nextStreak decides the streak value for a practice on today, given the
// persisted last practice date (empty string when absent) and the current
// streak. sameDay reports that today was already practiced, in which case
// the streak and last-practice-date must not be touched.
//
// Rules:
//   - same calendar date: no change
//   - no prior date, or exactly one calendar day later: streak + 1
//   - anything else (gap, malformed date, clock gone backwards): reset to 1
func nextStreak(lastDate string, today time.Time, current int) (streak int, sameDay bool) {
	todayStr := today.Format(dateLayout)
	if lastDate == todayStr {
		return current, true
	}
	if lastDate == "" {
		return current + 1, false
	}

	last, err := time.Parse(dateLayout, lastDate)
	if err != nil {
		// Malformed persisted date: treat like a break in the chain.
		return 1, false
	}

	// Re-parse today's formatted date so both sides are UTC midnights;
	// the difference is then an exact whole number of days, immune to
	// DST shifts in the local zone.
	todayDate, _ := time.Parse(dateLayout, todayStr)
	diffDays := int(todayDate.Sub(last).Hours() / 24)

	if diffDays == 1 {
		return current + 1, false
	}
	return 1, false
}
