package links

import (
	"net/url"
	"strconv"
	"strings"
)

// EncodeSegment joins parts with "/" and escapes the result as a single path
// segment, so "42" and "7" become "42%2F7".
func EncodeSegment(parts ...string) string {
	return url.PathEscape(strings.Join(parts, "/"))
}

// DecodeSegment reverses EncodeSegment.
func DecodeSegment(segment string) ([]string, error) {
	raw, err := url.PathUnescape(segment)
	if err != nil {
		return nil, err
	}
	return strings.SplitN(raw, "/", 2), nil
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

func absent(ids ...int) bool {
	for _, id := range ids {
		if id <= 0 {
			return true
		}
	}
	return false
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
