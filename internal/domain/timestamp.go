package domain

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Timestamp is a UTC instant persisted as a native BSON datetime.
// Older documents carry the same field as an ISO-8601 string; both decode
// to the same value.
type Timestamp struct {
	time.Time
}

// Layouts accepted for string-encoded timestamps. Strings without an offset
// are taken as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// NewTimestamp wraps t, normalized to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// Now returns the current instant as a Timestamp.
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

// ParseTimestamp parses an ISO-8601 string as written by isoformat-style
// serializers.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t), nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// MarshalBSONValue always writes a native datetime.
func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Time.UTC())
}

// UnmarshalBSONValue accepts a datetime or a string.
func (t *Timestamp) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bsontype.DateTime:
		ms, ok := raw.DateTimeOK()
		if !ok {
			return fmt.Errorf("malformed datetime value")
		}
		t.Time = time.UnixMilli(ms).UTC()
	case bsontype.String:
		s, ok := raw.StringValueOK()
		if !ok {
			return fmt.Errorf("malformed string value")
		}
		parsed, err := ParseTimestamp(s)
		if err != nil {
			return err
		}
		*t = parsed
	case bsontype.Null, bsontype.Undefined:
		t.Time = time.Time{}
	default:
		return fmt.Errorf("cannot decode %s into a timestamp", bt)
	}
	return nil
}
