// Package app defines the shared screen lifecycle used by the view
// controllers beneath it.
package app

// State is the lifecycle of a screen's data. Screens re-enter Loading on
// every mutation that requires a fetch and settle in Ready or Error.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)
