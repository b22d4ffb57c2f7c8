package codec

import (
	"time"

	ku "github.com/reoring/kontrolluppgift"
)

// floating marks times read without a zone designator so they are written
// back without one.
var floating = time.FixedZone("", 0)

// DateTime returns the xs:dateTime codec. Values with a zone designator are
// handled as RFC 3339; values without one are kept zone-less on re-encode.
func DateTime() ku.Codec[time.Time] { return dateTimeCodec{} }

type dateTimeCodec struct{}

func (dateTimeCodec) Name() string { return "dateTime" }

func (dateTimeCodec) Decode(text string) (time.Time, error) {
	t, err := parseDateTime(text)
	if err != nil {
		iss := ku.UnexpectedToken("", "dateTime", text)
		iss[0].Cause = err
		return time.Time{}, iss
	}
	return t, nil
}

func (dateTimeCodec) Encode(v time.Time) (string, error) { return formatDateTime(v), nil }

func parseDateTime(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	if t2, err2 := time.ParseInLocation("2006-01-02T15:04:05.999999999", s, floating); err2 == nil {
		return t2, nil
	}
	return time.Time{}, err
}

func formatDateTime(t time.Time) string {
	if t.Location() == floating {
		return t.Format("2006-01-02T15:04:05.999999999")
	}
	// Go trims trailing zeros from the fraction
	return t.Format(time.RFC3339Nano)
}
