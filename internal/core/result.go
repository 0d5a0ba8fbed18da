package core

// Result returns results[index] as T, or the zero T when it is nil.
// Adapters use it to convert the values returned by Proxy.Invoke.
func Result[T any](results []any, index int) T {
	value, _ := results[index].(T)

	return value
}
