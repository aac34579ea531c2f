package models

import (
	"bytes"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// StringList is a JSONB-backed string array column (authors, founders, ...).
type StringList = datatypes.JSONSlice[string]

const dateLayout = "2006-01-02"

// Date is a calendar date that accepts both "2006-01-02" and RFC 3339
// strings on input and renders as "2006-01-02".
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
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// OptionalDate distinguishes three update intents for a nullable date
// field: absent (keep current value), cleared (set to null) and set.
// Empty string and the literal "undefined" both clear, matching what
// browser form clients actually send.
type OptionalDate struct {
	Set   bool
	Valid bool
	Time  time.Time
}

func (o *OptionalDate) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "undefined" {
		o.Valid = false
		return nil
	}
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	o.Valid = true
	o.Time = t
	return nil
}

func (o OptionalDate) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + o.Time.Format(dateLayout) + `"`), nil
}

// TimePtr returns the value as a nullable time, nil when cleared or absent.
func (o OptionalDate) TimePtr() *time.Time {
	if !o.Set || !o.Valid {
		return nil
	}
	t := o.Time
	return &t
}

// Apply writes the three-way intent into a nullable model field.
func (o OptionalDate) Apply(dest **time.Time) {
	if !o.Set {
		return
	}
	if !o.Valid {
		*dest = nil
		return
	}
	t := o.Time
	*dest = &t
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
}

// Owned is implemented by every creator-scoped entity. Methods are
// defined on pointer receivers so repositories and services can share one
// generic implementation.
type Owned interface {
	GetID() uint
	OwnerID() uint
	SetOwner(id uint)
}
