package builder

// appendCopy appends to a fresh backing array so builder values never share
// state with the values they were derived from
func appendCopy[T any](s []T, elems ...T) []T {
	out := make([]T, 0, len(s)+len(elems))
	out = append(out, s...)
	return append(out, elems...)
}

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return appendCopy(s)
}
