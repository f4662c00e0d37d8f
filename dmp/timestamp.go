package dmp

import (
	"fmt"
	"time"
)

// dateLayout is the calendar-day form mandated by the standard for fields
// like dataset.issued or license.start_date.
const dateLayout = "2006-01-02"

// Timestamp is a point in time serialized in the RFC 3339 form used by the
// standard for the created and modified properties.
type Timestamp time.Time

// NewTimestamp returns the timestamp of a given time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// MustTimestamp parses an RFC 3339 string or panics. Meant for fixtures and
// tests.
func MustTimestamp(value string) Timestamp {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(fmt.Sprintf("dmp: invalid timestamp %q: %v", value, err))
	}
	return Timestamp(t)
}

// Time returns the underlying time value.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// IsZero reports whether the timestamp is unset.
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Timestamp) String() string {
	return time.Time(t).Format(time.RFC3339)
}

// MarshalJSON implements Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// UnmarshalJSON implements Unmarshaler. Values that are not RFC 3339 strings
// are rejected.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp is not a JSON string: %s", data)
	}
	parsed, err := time.Parse(time.RFC3339, string(data[1:len(data)-1]))
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// Date is a calendar day serialized as YYYY-MM-DD.
type Date time.Time

// NewDate returns the date of a given time, dropping the time of day.
func NewDate(t time.Time) Date {
	return Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// MustDate parses a YYYY-MM-DD string or panics. Meant for fixtures and
// tests.
func MustDate(value string) Date {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		panic(fmt.Sprintf("dmp: invalid date %q: %v", value, err))
	}
	return Date(t)
}

// Time returns the underlying time value.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

// MarshalJSON implements Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements Unmarshaler. Values that are not YYYY-MM-DD
// strings are rejected.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("date is not a JSON string: %s", data)
	}
	parsed, err := time.Parse(dateLayout, string(data[1:len(data)-1]))
	if err != nil {
		return err
	}
	*d = Date(parsed)
	return nil
}
