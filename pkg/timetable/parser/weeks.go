package parser

import (
	"math"
	"strconv"
	"strings"
)

// MaxWeek is the largest week number accepted in a week list.
const MaxWeek = 1000

// ParseWeeks splits a comma-separated week list. Tokens that are empty, non-numeric,
// fractional, non-positive, above MaxWeek or above limit (when limit > 0) are counted
// as invalid and left out; the remaining weeks keep their input order.
func ParseWeeks(s string, limit int) (weeks []int, invalid int) {
	for _, token := range strings.Split(s, ",") {
		week, ok := parseWeek(strings.TrimSpace(token))
		if !ok || (limit > 0 && week > limit) {
			invalid++
			continue
		}
		weeks = append(weeks, week)
	}
	return weeks, invalid
}

func parseWeek(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		// "3.0" is still week 3.
		f, ferr := strconv.ParseFloat(token, 64)
		if ferr != nil || math.IsInf(f, 0) || f != math.Trunc(f) || f > MaxWeek {
			return 0, false
		}
		n = int(f)
	}
	if n <= 0 || n > MaxWeek {
		return 0, false
	}
	return n, true
}
