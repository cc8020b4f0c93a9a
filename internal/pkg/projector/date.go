// Package projector shapes database values into the JSON the UI expects.
package projector

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	LayoutDisplay = "02-01-2006"
	LayoutSlash   = "02/01/2006"
	LayoutInput   = "2006-01-02"
)

var parseLayouts = []string{
	LayoutInput,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	LayoutSlash,
	LayoutDisplay,
}

// ParseDate accepts the date shapes the UI and database emit. Blank or unparseable input yields nil.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

// Date is a nullable calendar date rendered as "DD-MM-YYYY".
type Date struct {
	Time  time.Time
	Valid bool
}

func NewDate(t *time.Time) Date {
	if t == nil {
		return Date{}
	}
	return Date{Time: *t, Valid: true}
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = Date{Time: v, Valid: true}
	case string:
		*d = NewDate(ParseDate(v))
	case []byte:
		*d = NewDate(ParseDate(string(v)))
	default:
		return fmt.Errorf("projector.Date: cannot scan %T", src)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time, nil
}

func (d Date) Format(layout string) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(layout)
}

func (d Date) String() string {
	return d.Format(LayoutDisplay)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return marshalLayout(d, LayoutDisplay), nil
}

// SlashDate is a Date rendered as "DD/MM/YYYY".
type SlashDate struct {
	Date
}

func (d SlashDate) String() string {
	return d.Format(LayoutSlash)
}

func (d SlashDate) MarshalJSON() ([]byte, error) {
	return marshalLayout(d.Date, LayoutSlash), nil
}

func marshalLayout(d Date, layout string) []byte {
	if !d.Valid {
		return []byte("null")
	}
	return []byte(`"` + d.Time.Format(layout) + `"`)
}
