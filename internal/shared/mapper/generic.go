// Package mapper holds generic slice mapping helpers used by the
// persistence and application layers.
package mapper

import "fmt"

// MapSlice applies a mapper function to each element of a slice.
// Returns nil if the input slice is nil.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	if items == nil {
		return nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceWithError applies a mapper that may fail to each element,
// returning on the first failure with the element index in the error.
func MapSliceWithError[T any, R any](items []T, mapFunc func(T) (R, error)) ([]R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]R, 0, len(items))
	for i, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item %d: %w", i, err)
		}
		result = append(result, mapped)
	}
	return result, nil
}

// IndexBy builds a lookup map keyed by key(item).
func IndexBy[T any, K comparable](items []T, key func(T) K) map[K]T {
	index := make(map[K]T, len(items))
	for _, item := range items {
		index[key(item)] = item
	}
	return index
}
