package repository

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"hypermedia-record-api/internal/record"
)

// MatchesFilter reports whether a record passes every active filter key.
// A key with an empty value is inactive. An active key matches when the
// record's field case-insensitively contains the value as a substring; a
// record missing the field fails that key.
func MatchesFilter(r record.Record, filter map[string]string) bool {
	for name, want := range filter {
		if want == "" {
			continue
		}
		have, ok := r[name]
		if !ok {
			return false
		}
		if !strings.Contains(strings.ToLower(have), strings.ToLower(want)) {
			return false
		}
	}
	return true
}

// MakeID synthesizes a record id: draw a random fractional value, discard
// the leading "0.", and encode the remaining integer in base-36. No
// collision check beyond the existence test in Add.
func MakeID() string {
	frac := strconv.FormatFloat(rand.Float64(), 'f', -1, 64)
	digits := strings.TrimPrefix(frac, "0.")
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		n = rand.Int63()
	}
	return strconv.FormatInt(n, 36)
}

// timestampLayout keeps a fixed-width fraction so timestamp strings order
// lexicographically the same way they order chronologically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Timestamp returns the wire form of "now" for dateCreated/dateUpdated.
func Timestamp() string {
	return time.Now().UTC().Format(timestampLayout)
}
