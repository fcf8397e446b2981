// Package engine implements the input-timing engine: the controller state
// record, the hex wire codec, the playback ring (PLAY/LAG), the RLE
// recorder, the frame ticker, and the supervisor that couples them all
// under a single owning goroutine.
//
// Every mutable field is owned by exactly one goroutine, enforced by
// construction rather than convention: a single actor goroutine (run, in
// supervisor.go) is the only code that ever reads or writes ring pointers,
// recorder state, mode, lag, frame-delay or vsync-enable. Commands and
// frame ticks both arrive at that goroutine as messages; there is nothing
// left to race. The values read by independent consumers are exposed
// through atomics instead: the published controller state backing the HID
// report via an atomic pointer swap, and the vsync count, LED flag and
// queue/recording fill counts read by the indicator and dashboard.
package engine
