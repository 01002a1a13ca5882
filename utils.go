package hubtel

import (
	"reflect"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/nyaruka/phonenumbers"
)

// defaultRegion is the numbering plan used to validate local-format
// recipient numbers. Hubtel is a Ghanaian gateway.
const defaultRegion = "GH"

const (
	timeFormat          = "2006-01-02 15:04:05"
	timeFormatNoSeconds = "2006-01-02 15:04"
)

// ParsePhoneNumber validates number against the Ghana numbering plan and
// returns it in E.164 format, e.g. "0550000000" becomes "+233550000000".
// International-format input with a "+" prefix is accepted as-is after
// validation.
//
// A number that cannot be parsed, or that parses but is not a valid
// number for the region, returns an [*InvalidPhoneNumberError].
func ParsePhoneNumber(number string) (string, error) {
	parsed, err := phonenumbers.Parse(number, defaultRegion)
	if err != nil {
		return "", &InvalidPhoneNumberError{Number: number}
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return "", &InvalidPhoneNumberError{Number: number}
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// extraLayouts covers inputs dateparse rejects: year-less and time-only
// forms, and the year-first scrambled form the gateway documentation
// lists. A zero year is filled with the current year; timeOnly layouts
// take today's date.
var extraLayouts = []struct {
	layout   string
	timeOnly bool
}{
	{"Mon Jan 2 15:04:05", false},
	{"Mon Jan 2 15:04", false},
	{"Mon Jan 2", false},
	{"2006 15:04:05 MST 2 Jan Mon", false},
	{"3:04:05 pm", true},
	{"3:04 pm", true},
	{"15:04:05", true},
	{"15:04", true},
}

// ParseTime normalizes a free-form date/time string to
// "YYYY-MM-DD HH:MM:SS", or to "YYYY-MM-DD HH:MM" when dropSeconds is
// set (the batches route rejects times with a seconds component).
//
// Accepted inputs include:
//
//	2018-03-23 10:27:24
//	2018-03-23T10:27:24.5
//	Fri Mar 23 10:27:24
//	Fri Mar 23 10:27:24 2018
//	2018 10:27:24 GMT 23 Mar Fri
//	Fri Mar 23 10:27:21 GMT 2018
//	Fri Mar 23
//	10:27 am
//
// An empty value returns "" with no error: scheduled times are optional.
// An unparseable value returns an [*InvalidTimeStringError].
func ParseTime(value string, dropSeconds bool) (string, error) {
	if value == "" {
		return "", nil
	}

	// dateparse accepts year-less and time-only inputs but returns them
	// with year 0, misreading "10:27 am" as October 27. Those inputs
	// belong to the extra layouts.
	parsed, err := dateparse.ParseAny(value)
	if err != nil || parsed.Year() == 0 {
		fallback, fallbackErr := parseExtraLayouts(value)
		switch {
		case fallbackErr == nil:
			parsed = fallback
		case err != nil:
			return "", &InvalidTimeStringError{Value: value}
		default:
			// dateparse read the date components but no layout matched;
			// keep them and fill in the current year.
			now := time.Now()
			parsed = time.Date(
				now.Year(), parsed.Month(), parsed.Day(),
				parsed.Hour(), parsed.Minute(), parsed.Second(), 0,
				parsed.Location(),
			)
		}
	}

	if dropSeconds {
		return parsed.Format(timeFormatNoSeconds), nil
	}

	return parsed.Format(timeFormat), nil
}

func parseExtraLayouts(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	now := time.Now()

	var lastErr error
	for _, candidate := range extraLayouts {
		parsed, err := time.Parse(candidate.layout, value)
		if err != nil {
			lastErr = err
			continue
		}

		if candidate.timeOnly {
			return time.Date(
				now.Year(), now.Month(), now.Day(),
				parsed.Hour(), parsed.Minute(), parsed.Second(), 0,
				parsed.Location(),
			), nil
		}

		if parsed.Year() == 0 {
			parsed = time.Date(
				now.Year(), parsed.Month(), parsed.Day(),
				parsed.Hour(), parsed.Minute(), parsed.Second(), 0,
				parsed.Location(),
			)
		}

		return parsed, nil
	}

	return time.Time{}, lastErr
}

// Prune returns a copy of body without its falsy-valued keys: nil,
// false, empty strings, numeric zero, and empty slices or maps are all
// removed. The gateway should never see explicit false/null/empty
// fields.
//
// Note that integer 0 is falsy and will be dropped.
func Prune(body map[string]any) map[string]any {
	pruned := make(map[string]any, len(body))

	for key, value := range body {
		if isFalsy(value) {
			continue
		}

		pruned[key] = value
	}

	return pruned
}

func isFalsy(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}
