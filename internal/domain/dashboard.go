package domain

import "time"

type PriceRange struct {
	High *string `json:"High"`
	Low  *string `json:"Low"`
}

type Dashboard struct {
	AllHotel     int        `json:"AllHotel"`
	Price        PriceRange `json:"Price"`
	LastHotelAdd *time.Time `json:"LastHotelAdd"`
}

type DashboardView struct {
	Data      []Hotel   `json:"Data"`
	Dashboard Dashboard `json:"Dashboard"`
}

// Summarize reduces hs in a single pass. Comparisons are strict, so on ties the
// earliest record in hs wins. An empty slice yields zero count and nil extrema.
// Rows without a doingtime never count as the latest addition.
func Summarize(hs []Hotel) Dashboard {
	d := Dashboard{AllHotel: len(hs)}
	if len(hs) == 0 {
		return d
	}

	high, low, last := hs[0], hs[0], hs[0]
	for _, h := range hs[1:] {
		if h.Price > high.Price {
			high = h
		}
		if h.Price < low.Price {
			low = h
		}
		if h.DoingTime != nil && (last.DoingTime == nil || h.DoingTime.After(*last.DoingTime)) {
			last = h
		}
	}

	d.Price.High = &high.Name
	d.Price.Low = &low.Name
	if last.DoingTime != nil {
		t := *last.DoingTime
		d.LastHotelAdd = &t
	}
	return d
}
