package money

import "strconv"

// FormatFCFA formats an amount in francs CFA with French thousands
// grouping, e.g. 1250000 -> "1 250 000 FCFA". Amounts carry no decimal
// subdivision.
func FormatFCFA(amount int64) string {
	return Group(amount) + " FCFA"
}

// Group returns the amount with space-separated thousands groups.
func Group(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) > 3 {
		var b []byte
		for i, c := range []byte(s) {
			if i > 0 && (len(s)-i)%3 == 0 {
				b = append(b, ' ')
			}
			b = append(b, c)
		}
		s = string(b)
	}

	if neg {
		return "-" + s
	}
	return s
}

// Percent returns part/total as a whole percentage, rounded to the
// nearest integer. A zero total yields 0 rather than dividing.
func Percent(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int((part*100 + total/2) / total)
}
