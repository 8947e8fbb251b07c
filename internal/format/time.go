// Package format renders history timestamps according to the
// display_date and display_time configuration keys.
package format

import (
	"time"

	"github.com/cliform-tools/cli/internal/config"
)

// DateTime renders the timestamp shown next to a recorded run.
// Example output: "Jan 23 15:04" or "01/23/2024 3:04 PM".
func DateTime(t time.Time) string {
	return t.Format(dateLayout() + " " + timeLayout())
}

// dateLayout maps the display_date key to a Go time layout. The presets
// cover the common orderings; anything else is taken as a layout verbatim.
func dateLayout() string {
	displayDate, _ := config.Get("display_date")
	switch displayDate {
	case "":
		return "Jan 02"
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	}
	return displayDate
}

// timeLayout maps the display_time key to a Go time layout.
func timeLayout() string {
	displayTime, _ := config.Get("display_time")
	if displayTime == "12h" {
		return "3:04 PM"
	}
	return "15:04"
}
