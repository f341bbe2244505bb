package core

// Mock drivers for tests and host-side bring-up. The busy-wait loops in
// this package only make progress when the clock moves, so MockClock
// advances itself by a fixed step on every Ticks call.

// MockClock is a deterministic Clock.
type MockClock struct {
	hz   uint32
	step uint32
	now  uint32
}

var _ Clock = (*MockClock)(nil)

// NewMockClock returns a clock at the given rate that advances by step
// ticks per Ticks call.
func NewMockClock(hz, step uint32) *MockClock {
	return &MockClock{hz: hz, step: step}
}

func (m *MockClock) Ticks() uint32 {
	m.now += m.step
	return m.now
}

func (m *MockClock) Hz() uint32 { return m.hz }

// Now returns the current counter without advancing it.
func (m *MockClock) Now() uint32 { return m.now }

// Advance moves the counter forward without a Ticks call.
func (m *MockClock) Advance(ticks uint32) { m.now += ticks }

// Edge is one recorded output transition.
type Edge struct {
	Pin   GPIOPin
	Level bool
	At    uint32 // clock counter when the transition happened
}

type inputEdge struct {
	at    uint32
	level bool
}

// MockGPIODriver is an in-memory GPIODriver. Output writes are recorded
// as timestamped edges; input levels can be forced directly or scheduled
// to change once the mock clock reaches a given counter value.
type MockGPIODriver struct {
	clock  *MockClock
	levels map[GPIOPin]bool
	script map[GPIOPin][]inputEdge
	edges  []Edge
}

var _ GPIODriver = (*MockGPIODriver)(nil)

// NewMockGPIODriver returns a driver timestamping against clock.
func NewMockGPIODriver(clock *MockClock) *MockGPIODriver {
	return &MockGPIODriver{
		clock:  clock,
		levels: make(map[GPIOPin]bool),
		script: make(map[GPIOPin][]inputEdge),
	}
}

func (m *MockGPIODriver) ConfigureInputPullDown(pin GPIOPin) error {
	if _, ok := m.levels[pin]; !ok {
		m.levels[pin] = false // pulled to the idle level
	}
	return nil
}

func (m *MockGPIODriver) ConfigureOutput(pin GPIOPin) error {
	if _, ok := m.levels[pin]; !ok {
		m.levels[pin] = false
	}
	return nil
}

func (m *MockGPIODriver) SetPin(pin GPIOPin, value bool) error {
	if m.levels[pin] != value {
		m.edges = append(m.edges, Edge{Pin: pin, Level: value, At: m.clock.Now()})
	}
	m.levels[pin] = value
	return nil
}

func (m *MockGPIODriver) ReadPin(pin GPIOPin) bool {
	script := m.script[pin]
	for len(script) > 0 && ticksReached(m.clock.Now(), script[0].at) {
		m.levels[pin] = script[0].level
		script = script[1:]
	}
	m.script[pin] = script
	return m.levels[pin]
}

// SetInput forces an input level immediately.
func (m *MockGPIODriver) SetInput(pin GPIOPin, level bool) {
	m.levels[pin] = level
}

// ScheduleInput queues a level change that takes effect on the first read
// at or after the given clock counter. Schedule edges in time order.
func (m *MockGPIODriver) ScheduleInput(pin GPIOPin, at uint32, level bool) {
	m.script[pin] = append(m.script[pin], inputEdge{at: at, level: level})
}

// Level returns the current level of a pin.
func (m *MockGPIODriver) Level(pin GPIOPin) bool {
	return m.levels[pin]
}

// Edges returns the transitions recorded for a pin through SetPin.
func (m *MockGPIODriver) Edges(pin GPIOPin) []Edge {
	var out []Edge
	for _, e := range m.edges {
		if e.Pin == pin {
			out = append(out, e)
		}
	}
	return out
}

// MockCell is a CalibrationCell returning a fixed byte or a forced error.
type MockCell struct {
	Intensity uint8
	Err       error
}

var _ CalibrationCell = MockCell{}

func (m MockCell) ReadIntensity() (uint8, error) {
	return m.Intensity, m.Err
}
