package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"swicc/internal/assert"
	"swicc/logger"
)

// freeRunPeriod is the free-running tick period.
const freeRunPeriod = 16667 * time.Microsecond

// defaultFrameDelay is the default vsync-to-change delay, in microseconds.
const defaultFrameDelay = 10000

// maxLag is the largest permitted lag depth, in frames.
const maxLag = 120

// USBStatus reports whether the HID gamepad class driver currently
// considers the device mounted. Implemented by the hid package; out of
// scope for this engine beyond the single boolean the GCS command reports.
type USBStatus interface {
	Mounted() bool
}

// published is the single value the HID adapter reads: the engine's
// current state and the mode governing whether neutral should be
// substituted for it. It is swapped atomically as a whole so a reader
// always sees one complete, self-consistent version rather than a partial
// update mid-write.
type published struct {
	state ControllerState
	mode  Mode
}

type cmdRequest struct {
	name  string
	arg   string
	reply chan string
}

// Supervisor owns every piece of mutable engine state behind a single
// actor goroutine. Commands and frame ticks are both delivered to it as
// messages; nothing outside that goroutine ever touches ring pointers,
// recorder state, mode, lag, frame-delay or vsync-enable, so there is
// nothing left to race (see doc.go).
type Supervisor struct {
	usb USBStatus

	cmds chan cmdRequest
	edge chan struct{}
	tick chan chan struct{}
	done chan struct{}

	current atomic.Pointer[published]

	// actor-owned state below; touched only inside run().
	mode       Mode
	lag        int
	frameDelay uint16
	vsyncEn    bool
	ring       playbackRing
	rec        recorder
	vsyncCount uint64      // updated only by the actor goroutine, read via atomic by VsyncCount
	ledEnabled atomic.Bool // updated only by the actor goroutine, read via atomic by LEDEnabled
	queueFill  atomic.Uint32 // mirrors ring.fill(), for dashboard reads off the actor
	recFill    atomic.Uint32 // mirrors rec.fillReport()'s fill, for dashboard reads off the actor
	curState   ControllerState
	timer      *time.Timer

	// owner asserts that every branch of run()'s select loop executes on
	// the same goroutine, so no two branches ever race on the fields above.
	owner *assert.Owner
}

// NewSupervisor creates a Supervisor in its power-on state: mode PLAY,
// current state Neutral, vsync disabled (free-running), frame-delay at its
// default.
func NewSupervisor(usb USBStatus) *Supervisor {
	s := &Supervisor{
		usb:         usb,
		cmds:        make(chan cmdRequest),
		edge:        make(chan struct{}, 1),
		tick:        make(chan chan struct{}),
		done:        make(chan struct{}),
		mode:        ModePlay,
		frameDelay:  defaultFrameDelay,
		curState:    Neutral,
		owner:       assert.NewOwner("supervisor actor"),
	}
	s.publish()
	return s
}

// Start launches the actor goroutine and arms the free-running alarm.
func (s *Supervisor) Start() {
	s.timer = time.NewTimer(freeRunPeriod)
	go s.run()
}

// Stop terminates the actor goroutine.
func (s *Supervisor) Stop() {
	close(s.done)
}

// Current returns the most recently published HID report, substituting
// Neutral in STOP mode. Safe to call from any goroutine without blocking
// on the actor: it is a lock-free atomic read.
func (s *Supervisor) Current() ControllerState {
	p := s.current.Load()
	if p.mode == ModeStop {
		return Neutral
	}
	return p.state
}

// VsyncCount returns the free-running/external-sync tick counter, used by
// the status indicator's heartbeat pattern. Safe for concurrent use:
// written only by the actor goroutine via atomic.AddUint64.
func (s *Supervisor) VsyncCount() uint64 {
	return atomic.LoadUint64(&s.vsyncCount)
}

// LEDEnabled reports whether the LED command most recently enabled the
// status indicator. Safe for concurrent use, read at the indicator's
// refresh rate.
func (s *Supervisor) LEDEnabled() bool {
	return s.ledEnabled.Load()
}

// QueueFill reports the playback ring's current fill, the same count GQF
// returns, for dashboard display. Lock-free: mirrored by the actor into an
// atomic field alongside every state-changing command, the same way
// VsyncCount is.
func (s *Supervisor) QueueFill() uint16 {
	return uint16(s.queueFill.Load())
}

// RecordingFill reports the recorder's current fill, the same count GRF
// returns, for dashboard display.
func (s *Supervisor) RecordingFill() uint16 {
	return uint16(s.recFill.Load())
}

// ModeName reports the engine's current playback mode as a short label,
// for dashboard display.
func (s *Supervisor) ModeName() string {
	p := s.current.Load()
	return p.mode.String()
}

// Execute submits a parsed command to the actor and blocks for its reply
// (empty string if the command has none). Implements command.Executor.
func (s *Supervisor) Execute(name, arg string) string {
	req := cmdRequest{name: name, arg: arg, reply: make(chan string, 1)}
	select {
	case s.cmds <- req:
	case <-s.done:
		return ""
	}
	select {
	case r := <-req.reply:
		return r
	case <-s.done:
		return ""
	}
}

// VsyncEdge signals a rising edge on the external vsync line. Non-blocking:
// a second edge arriving before the actor has processed the first
// coalesces with it, the same way a single hardware alarm register cannot
// queue more than one pending arm.
func (s *Supervisor) VsyncEdge() {
	select {
	case s.edge <- struct{}{}:
	default:
	}
}

// Tick forces one frame tick through the actor, as if the free-running
// alarm had fired. Used by tests to drive the engine deterministically
// without waiting on real timers.
func (s *Supervisor) Tick() {
	ack := make(chan struct{})
	select {
	case s.tick <- ack:
	case <-s.done:
		return
	}
	select {
	case <-ack:
	case <-s.done:
	}
}

func (s *Supervisor) run() {
	for {
		var timerC <-chan time.Time
		if s.timer != nil {
			timerC = s.timer.C
		}

		select {
		case <-s.done:
			return

		case req := <-s.cmds:
			s.owner.Check()
			reply := s.handleCommand(req.name, req.arg)
			s.publish()
			req.reply <- reply

		case <-s.edge:
			s.owner.Check()
			if s.vsyncEn {
				atomic.AddUint64(&s.vsyncCount, 1)
				s.armTimer(time.Duration(s.frameDelay) * time.Microsecond)
			}

		case ack := <-s.tick:
			s.owner.Check()
			s.applyTick()
			atomic.AddUint64(&s.vsyncCount, 1)
			ack <- struct{}{}

		case <-timerC:
			s.owner.Check()
			s.applyTick()
			if !s.vsyncEn {
				atomic.AddUint64(&s.vsyncCount, 1)
				s.armTimer(freeRunPeriod)
			}
			// if vsyncEn, this fire was the delayed, edge-armed one-shot: the
			// count was already taken at edge arrival.
		}
	}
}

func (s *Supervisor) armTimer(d time.Duration) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.NewTimer(d)
}

func (s *Supervisor) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = nil
}

// applyTick performs the ring-and-recorder portion of one frame tick;
// incrementing vsyncCount and rearming are the caller's responsibility
// since they differ between the free-running and external-sync sources.
func (s *Supervisor) applyTick() {
	switch s.mode {
	case ModePlay:
		if st, ok := s.ring.dequeuePlay(); ok {
			s.curState = st
		}
	case ModeLag:
		s.curState = s.ring.stepLag(s.lag)
	case ModeRT, ModeStop:
		// no ring work
	}

	if s.rec.recording {
		s.rec.tick(s.curState)
	}

	s.publish()
}

func (s *Supervisor) publish() {
	p := &published{state: s.curState, mode: s.mode}
	s.current.Store(p)
	s.publishFills()
}

// publishFills mirrors the ring and recorder fill counts into atomic
// fields so dashboard goroutines can read them without going through the
// actor's command channel.
func (s *Supervisor) publishFills() {
	s.queueFill.Store(uint32(s.ring.fill()))
	fill, _, _ := s.rec.fillReport()
	s.recFill.Store(uint32(fill))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (s *Supervisor) handleCommand(name, arg string) string {
	switch name {
	case "ID":
		return "+SwiCC \r\n"

	case "VER":
		return "+VER 2.2\r\n"

	case "Q":
		if st, ok := ParseControllerState(arg); ok {
			s.ring.enqueuePlay(st)
			s.mode = ModePlay
		}
		return ""

	case "QL":
		if st, ok := ParseControllerState(arg); ok {
			s.ring.writeLagHead(st)
			s.mode = ModeLag
		}
		return ""

	case "IMM":
		if st, ok := ParseControllerState(arg); ok {
			s.curState = st
			s.ring.reset()
			s.mode = ModeRT
			s.publish()
		}
		return ""

	case "SLAG":
		if v, ok := parseDecimal(arg); ok {
			newLag := v
			if newLag > maxLag {
				newLag = maxLag
			}
			if newLag < s.lag {
				s.ring.snapTail(newLag)
			}
			s.lag = newLag
		}
		return ""

	case "VSD":
		if v, ok := parseHex(arg); ok {
			s.frameDelay = uint16(v)
		}
		return ""

	case "REC":
		switch arg {
		case "1":
			s.rec.start(s.curState)
		case "0":
			s.rec.stop()
		}
		return ""

	case "GCS":
		return fmt.Sprintf("+GCS %d\r\n", boolToInt(s.usb.Mounted()))

	case "GQF":
		return fmt.Sprintf("+GQF %04X\r\n", s.ring.fill())

	case "GRF":
		fill, _, _ := s.rec.fillReport()
		return fmt.Sprintf("+GRF %04X\r\n", fill)

	case "GRR":
		_, remaining, _ := s.rec.fillReport()
		return fmt.Sprintf("+GRR %04X\r\n", remaining)

	case "GRB":
		_, _, total := s.rec.fillReport()
		return fmt.Sprintf("+GRB %04X\r\n", total)

	case "GR":
		if arg == "0" {
			s.rec.resetStream()
		}
		entries, done := s.rec.streamChunk()
		resp := ""
		for _, e := range entries {
			resp += fmt.Sprintf("+R %04X%02X%02X%02X%02X%02Xx%02X\r\n",
				e.state.Buttons, e.state.Hat, e.state.LX, e.state.LY, e.state.RX, e.state.RY, e.run)
		}
		if done {
			resp += "+GR 0\r\n"
		} else {
			resp += "+GR 1\r\n"
		}
		return resp

	case "VSYNC":
		switch arg {
		case "0":
			if s.vsyncEn {
				s.vsyncEn = false
				s.armTimer(freeRunPeriod)
			}
			return ""
		case "1":
			if !s.vsyncEn {
				s.vsyncEn = true
				s.stopTimer()
			}
			return ""
		default:
			return fmt.Sprintf("+VSYNC %d\r\n", boolToInt(s.vsyncEn))
		}

	case "LED":
		switch arg {
		case "1":
			s.ledEnabled.Store(true)
		case "0":
			s.ledEnabled.Store(false)
		}
		return ""

	default:
		logger.Logf(logger.Allow, "engine", "unreachable command dispatch: %s", name)
		return ""
	}
}
