package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatRupees renders an amount as "Rs 1,200.00" using Indian digit grouping.
func FormatRupees(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole, frac, _ := strings.Cut(FormatMoney(amount), ".")
	return fmt.Sprintf("%sRs %s.%s", sign, groupIndian(whole), frac)
}

// groupIndian groups the last three digits, then pairs: 12,34,567.
func groupIndian(digits string) string {
	if _, err := strconv.ParseUint(digits, 10, 64); err != nil || len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}
