package envutil

// Option modifies a Reader. Readers like String and Bool accept options so
// the caller can supply defaults and validation inline.
type Option[T any] func(Reader[T]) Reader[T]

// Default provides a value for a missing variable.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Validate runs f on a present value and records its error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(func(val T) (T, error) {
			return val, f(val)
		})
	}
}
