package domain

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidBudget means a budget string yielded no numeric bound.
var ErrInvalidBudget = errors.New("Budget could not be parsed")

// ParseBudgetRange parses a free-text budget range string into inclusive
// [min, max] bounds in millions. Tokens are runs of digits and periods;
// everything else is a separator. The first token is the lower bound, the
// second (if present) the upper; a single bound defaults the upper to
// 1.2x the lower.
func ParseBudgetRange(budget string) (min, max float64, err error) {
	var tokens []float64
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		if v, perr := strconv.ParseFloat(cur.String(), 64); perr == nil {
			tokens = append(tokens, v)
		}
		cur.Reset()
	}
	for _, r := range budget {
		if (r >= '0' && r <= '9') || r == '.' {
			cur.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	if len(tokens) == 0 {
		return 0, 0, ErrInvalidBudget
	}
	min = tokens[0]
	if len(tokens) >= 2 {
		max = tokens[1]
	} else {
		max = min * 1.2
	}
	return min, max, nil
}
