package sanitizer

import (
	"strings"
)

// FilterEmpty removes whitespace-only entries from a slice.
func FilterEmpty(slice []string) []string {
	result := make([]string, 0)
	for _, item := range slice {
		if strings.TrimSpace(item) != "" {
			result = append(result, item)
		}
	}
	return result
}

// Deduplicate preserves first occurrence order.
func Deduplicate[T comparable](slice []T) []T {
	seen := make(map[T]bool)
	result := make([]T, 0)

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}

// LimitSliceLength caps a slice at maxLength elements, keeping the head.
func LimitSliceLength[T any](slice []T, maxLength int) []T {
	if maxLength <= 0 {
		return []T{}
	}

	if len(slice) <= maxLength {
		return slice
	}

	return slice[:maxLength]
}

func TrimStringSlice(slice []string) []string {
	result := make([]string, len(slice))
	for i, item := range slice {
		result[i] = strings.TrimSpace(item)
	}
	return result
}

// CleanStringSlice applies the standard list cleanup pipeline: trim entries,
// drop empties, deduplicate.
func CleanStringSlice(slice []string) []string {
	return Apply(slice,
		TrimStringSlice,
		FilterEmpty,
		Deduplicate[string],
	)
}

func FilterSlice[T any](slice []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

func TransformSlice[T any, R any](slice []T, transform func(T) R) []R {
	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = transform(item)
	}
	return result
}
