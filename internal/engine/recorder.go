package engine

// recCap is the recording ring's fixed capacity: 14400 entries, roughly
// four minutes at 60 Hz if fully incompressible. Not a power of two, so
// indices are plain uint16 with explicit modulo arithmetic.
const recCap = 14400

// maxRun is the largest run-length a single recording entry can hold.
const maxRun = 240

// recorder is the circular buffer of (state, run-length) pairs capturing
// the live output.
type recorder struct {
	states [recCap]ControllerState
	runs   [recCap]uint8

	head    uint16
	wrapped bool

	recording bool

	// streamHead tracks progress of the GR readout stream.
	streamHead uint16
}

// start begins a new recording: head and wrapped reset, and the current
// state seeds slot 0 with a run of 1.
func (r *recorder) start(cur ControllerState) {
	r.head = 0
	r.wrapped = false
	r.states[0] = cur
	r.runs[0] = 1
	r.recording = true
}

// stop clears the recording flag; buffered data is preserved untouched.
func (r *recorder) stop() {
	r.recording = false
}

// tick applies one frame's worth of RLE update. Called only while
// recording is active.
func (r *recorder) tick(cur ControllerState) {
	if r.states[r.head] == cur && r.runs[r.head] < maxRun {
		r.runs[r.head]++
		return
	}

	r.head = (r.head + 1) % recCap
	if r.head == 0 {
		r.wrapped = true
	}
	r.states[r.head] = cur
	r.runs[r.head] = 1
}

// fillReport returns (fill, remaining, total): if wrapped, the buffer
// reports as entirely full; otherwise fill is head and remaining is the
// unused space ahead of it.
func (r *recorder) fillReport() (fill, remaining, total int) {
	total = recCap
	if r.wrapped {
		return recCap, 0, total
	}
	return int(r.head), recCap - int(r.head), total
}

// resetStream establishes the GR stream head for a "GR 0" readout: the
// oldest entry if the buffer has wrapped, otherwise slot 0.
func (r *recorder) resetStream() {
	if r.wrapped {
		r.streamHead = (r.head + 1) % recCap
	} else {
		r.streamHead = 0
	}
}

// recordEntry is one (state, run) pair as reported by GR.
type recordEntry struct {
	state ControllerState
	run   uint8
}

// streamChunk emits up to 30 entries starting at streamHead, advancing it
// as it goes. done is true once the chunk has reached head: the entry at
// head is still emitted before completion is signalled.
func (r *recorder) streamChunk() (entries []recordEntry, done bool) {
	const chunkSize = 30
	for i := 0; i < chunkSize; i++ {
		entries = append(entries, recordEntry{state: r.states[r.streamHead], run: r.runs[r.streamHead]})
		if r.streamHead == r.head {
			return entries, true
		}
		r.streamHead = (r.streamHead + 1) % recCap
	}
	return entries, false
}
