package util

import "time"

// compactDate is the OpenDART wire format for dates.
const compactDate = "20060102"

var seoul *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		// KST has no DST; the fixed offset is equivalent.
		loc = time.FixedZone("KST", 9*60*60)
	}
	seoul = loc
}

// Seoul returns the KST location used for all window math and display times.
func Seoul() *time.Location {
	return seoul
}

// CompactDate formats t as YYYYMMDD in KST.
func CompactDate(t time.Time) string {
	return t.In(seoul).Format(compactDate)
}

// DateWindow returns the [start, end] compact-date pair covering daysBack
// days up to now, both in KST.
func DateWindow(now time.Time, daysBack int) (string, string) {
	end := now.In(seoul)
	start := end.AddDate(0, 0, -daysBack)
	return CompactDate(start), CompactDate(end)
}

// DisplayTime formats t for user-visible messages.
func DisplayTime(t time.Time) string {
	return t.In(seoul).Format("2006-01-02 15:04:05 KST")
}
