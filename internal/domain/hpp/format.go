package hpp

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"regexp"
	"strconv"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05-07:00"

	eventDateLayout = "2006-01-02T15:04:05Z"
)

var eventDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{1,6}Z$`)

type valueKind uint8

const (
	kindUnset valueKind = iota
	kindAbsolute
	kindRelative
)

// DateValue is either a calendar date or a number of days from today.
// The zero value is unset.
type DateValue struct {
	kind valueKind
	date time.Time
	days int
}

func AbsoluteDate(d time.Time) DateValue {
	return DateValue{kind: kindAbsolute, date: d}
}

func DaysFromToday(days int) DateValue {
	return DateValue{kind: kindRelative, days: days}
}

func (v DateValue) IsSet() bool {
	return v.kind != kindUnset
}

// Resolve formats the value as YYYY-MM-DD. Relative values are counted from
// the calendar day of now. An unset value resolves to "".
func (v DateValue) Resolve(now time.Time) string {
	switch v.kind {
	case kindAbsolute:
		return v.date.Format(DateLayout)
	case kindRelative:
		y, m, d := now.Date()
		return time.Date(y, m, d+v.days, 0, 0, 0, 0, now.Location()).Format(DateLayout)
	default:
		return ""
	}
}

// TimeValue is either an absolute timestamp or an offset from now.
// The zero value is unset.
type TimeValue struct {
	kind   valueKind
	at     time.Time
	offset time.Duration
}

func AbsoluteTime(t time.Time) TimeValue {
	return TimeValue{kind: kindAbsolute, at: t}
}

func TimeOffset(d time.Duration) TimeValue {
	return TimeValue{kind: kindRelative, offset: d}
}

func (v TimeValue) IsSet() bool {
	return v.kind != kindUnset
}

// Resolve formats the value with an explicit offset and whole seconds.
// Relative values are evaluated against now in UTC. Absolute values keep
// their own offset. An unset value resolves to "".
func (v TimeValue) Resolve(now time.Time) string {
	var t time.Time
	switch v.kind {
	case kindAbsolute:
		t = v.at
	case kindRelative:
		t = now.UTC().Add(v.offset)
	default:
		return ""
	}
	return t.Truncate(time.Second).Format(DateTimeLayout)
}

// EncodeOrderData gzips data and base64-encodes the archive as a single
// line of standard base64, without line wrapping or a trailing newline.
func EncodeOrderData(data string) (string, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(data)); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ParseEventDate accepts YYYY-MM-DDTHH:MM:SS.ffffffZ (1 to 6 fraction digits)
// and returns a UTC time.
func ParseEventDate(field, raw string) (time.Time, error) {
	if !eventDatePattern.MatchString(raw) {
		return time.Time{}, &InvalidTimestampError{Field: field, Raw: raw}
	}
	t, err := time.ParseInLocation(eventDateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, &InvalidTimestampError{Field: field, Raw: raw}
	}
	return t.UTC(), nil
}

// ParseStrictBool accepts only the literals "true" and "false".
func ParseStrictBool(field, raw string) (bool, error) {
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, &InvalidBooleanLiteralError{Field: field, Raw: raw}
	}
}

func ParseInt(field, raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &InvalidFieldTypeError{Field: field, Expected: "integer", Got: raw}
	}
	return v, nil
}
