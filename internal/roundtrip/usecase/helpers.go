package usecase

import (
	"sort"
	"time"

	"github.com/xdanysx/FlightChecker/internal/roundtrip/entity"
)

const dayLayout = "2006-01-02"

type yearMonth struct {
	year  int
	month time.Month
}

// monthsBetween lists every (year, month) the window [start, end] touches,
// crossing year boundaries when needed.
func monthsBetween(start, end time.Time) []yearMonth {
	months := []yearMonth{}
	year, month := start.Year(), start.Month()
	for {
		months = append(months, yearMonth{year: year, month: month})
		if year == end.Year() && month == end.Month() {
			break
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return months
}

func sortOptions(options []entity.RoundTripOption) {
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Total != options[j].Total {
			return options[i].Total < options[j].Total
		}
		return options[i].Outbound.Day.Before(options[j].Outbound.Day)
	})
}

func limitOptions(options []entity.RoundTripOption, n int) []entity.RoundTripOption {
	if n <= 0 || n >= len(options) {
		return options
	}
	return options[:n]
}

// bestPerOutboundDay reduces ranked options to one chart point per outbound
// day, keeping the cheapest total.
func bestPerOutboundDay(options []entity.RoundTripOption) []entity.SeriesPoint {
	best := make(map[string]entity.SeriesPoint)
	for _, option := range options {
		key := option.Outbound.Day.Format(dayLayout)
		if point, ok := best[key]; ok && point.Total <= option.Total {
			continue
		}
		best[key] = entity.SeriesPoint{Day: option.Outbound.Day, Total: option.Total}
	}

	points := make([]entity.SeriesPoint, 0, len(best))
	for _, point := range best {
		points = append(points, point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day.Before(points[j].Day)
	})
	return points
}

func valueOrDefault(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

func cloneQuotes(quotes []entity.FareQuote) []entity.FareQuote {
	if quotes == nil {
		return nil
	}
	clone := make([]entity.FareQuote, len(quotes))
	copy(clone, quotes)
	return clone
}
