package outbound

// TaskDispatcher runs a task on a background worker. Satisfied by
// ants.Pool.
type TaskDispatcher interface {
	Submit(task func()) error
}
