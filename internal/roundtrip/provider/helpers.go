package provider

import "time"

const fareDayLayout = "2006-01-02"

// fareTimestampLayout matches the zoneless local timestamps the pricing API
// reports for departure and arrival.
const fareTimestampLayout = "2006-01-02T15:04:05"

func parseFareDay(value string) (time.Time, error) {
	return time.Parse(fareDayLayout, value)
}

func parseFareTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(fareTimestampLayout, value)
	if err != nil {
		return nil
	}
	return &parsed
}
