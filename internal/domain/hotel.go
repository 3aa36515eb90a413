package domain

import "time"

// DoingTimeLayout is the wire format used when writing doingtime values.
const DoingTimeLayout = time.DateTime

type Hotel struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	DoingTime *time.Time `json:"doingtime"` // effectively created_at; nil for a NULL column
}

// NewHotel is an insert payload. Nil Name/Price reach storage as NULL so the
// table constraints decide.
type NewHotel struct {
	Name      *string
	Price     *float64
	DoingTime string // DoingTimeLayout
}
