package collection

// watch subscribes to a container and collects every event it delivers.
func watch[T any](subscribe func(Handler[T]) func()) *[]ChangeEvent[T] {
	events := &[]ChangeEvent[T]{}

	subscribe(func(e ChangeEvent[T]) {
		*events = append(*events, e)
	})

	return events
}
