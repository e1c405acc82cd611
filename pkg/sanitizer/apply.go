package sanitizer

// Apply runs a value through a sequence of transformations and returns the result.
// Useful for building cleanup chains while maintaining type safety.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable transformation pipeline that can be stored and reused.
// Preferred over repeated Apply calls when the same chain is applied to many values.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
