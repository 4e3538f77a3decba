package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Date is a timestamp that accepts both RFC 3339 and YYYY-MM-DD on decode.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.UTC().Format(time.RFC3339Nano))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}

	str, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("decode date %s: %w", s, err)
	}

	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		t, err := time.Parse(layout, str)
		if err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("decode date %q: unsupported layout", str)
}
