package calendar

import (
	"fmt"
	"github.com/hablullah/go-hijri"
	"time"
)

var hijriMonthNames = [12]string{
	"Muharram",
	"Safar",
	"Rabi al-Awwal",
	"Rabi al-Thani",
	"Jumada al-Awwal",
	"Jumada al-Thani",
	"Rajab",
	"Shaban",
	"Ramadan",
	"Shawwal",
	"Dhu al-Qadah",
	"Dhu al-Hijjah",
}

// HijriLabel renders the Hijri span of the Gregorian month containing the
// given time, e.g. "Muharram 1447 AH" or "Muharram - Safar 1447 AH".
// A Gregorian month straddles at most two Hijri months. Conversion uses the
// Umm al-Qura tables.
func HijriLabel(month time.Time) string {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	last := first.AddDate(0, 1, -1)

	start, err := hijri.CreateUmmAlQuraDate(first)
	if err != nil {
		return ""
	}

	end, err := hijri.CreateUmmAlQuraDate(last)
	if err != nil {
		return ""
	}

	startName := hijriMonthName(start.Month)
	endName := hijriMonthName(end.Month)

	if start.Year == end.Year {
		if start.Month == end.Month {
			return fmt.Sprintf("%s %d AH", startName, start.Year)
		}
		return fmt.Sprintf("%s - %s %d AH", startName, endName, start.Year)
	}

	return fmt.Sprintf("%s %d - %s %d AH", startName, start.Year, endName, end.Year)
}

func hijriMonthName(month int64) string {
	if month < 1 || month > 12 {
		return ""
	}
	return hijriMonthNames[month-1]
}
