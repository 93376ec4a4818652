package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseValues parses a comma-separated integer list like "5,3,4,1,2".
func parseValues(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	values := make([]int, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("value %d: %q is not an integer", i+1, p)
		}
		values = append(values, v)
	}
	return values, nil
}

// formatValues renders an array the way trace output shows it.
func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
