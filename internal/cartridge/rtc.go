package cartridge

// RTC models the MBC3 real-time clock: seconds, minutes, hours, a 9-bit
// day counter, a halt flag, and a day-carry flag, all driven by elapsed
// wall-clock time rather than emulator ticks.
//
// Latching follows the real hardware's two-write sequence: writing 0x00
// then 0x01 to the latch register (0x6000-0x7FFF) copies the live,
// continuously-advancing clock into the latched registers the CPU actually
// reads; the live clock keeps advancing underneath the latch.
type RTC struct {
	Seconds uint8
	Minutes uint8
	Hours   uint8
	DayLow  uint8 // bits 0-7 of the 9-bit day counter
	DayHigh uint8 // bit 0: day bit 8, bit 6: halt, bit 7: day counter carry

	// latchSeconds etc. hold the values most recently copied by a
	// 0x00-then-0x01 write sequence; these are what 0xA000-0xBFFF reads
	// return once selected via the bank/RTC-select register.
	latchSeconds uint8
	latchMinutes uint8
	latchHours   uint8
	latchDayLow  uint8
	latchDayHigh uint8

	prelatch bool

	// now returns the host's monotonic clock in seconds; swapped out in
	// tests. In production this is the `Clock func() uint64` hook from
	// emulator.Config.
	now func() uint64

	lastSync uint64 // now() value as of the last advanceBy call
}

const (
	rtcDayHighDayBit  = 0x01
	rtcDayHighHaltBit = 0x40
	rtcDayHighCarry   = 0x80
	rtcMaxDay         = 0x1FF // 9-bit day counter
)

// NewRTC creates an RTC driven by the given host clock hook, starting at
// zero and synced to the clock's current reading.
func NewRTC(now func() uint64) *RTC {
	r := &RTC{now: now}
	if r.now != nil {
		r.lastSync = r.now()
	}
	return r
}

// Sync advances the live clock registers by the elapsed wall-clock time
// since the last call, unless the halt bit is set. Called before any RTC
// register read/write so the registers reflect real elapsed time.
func (r *RTC) Sync() {
	if r.now == nil || r.DayHigh&rtcDayHighHaltBit != 0 {
		return
	}
	current := r.now()
	if current <= r.lastSync {
		return
	}
	r.advanceBy(current - r.lastSync)
	r.lastSync = current
}

func (r *RTC) advanceBy(deltaSeconds uint64) {
	total := r.toSeconds() + deltaSeconds
	r.fromSeconds(total)
}

func (r *RTC) day() int {
	return (int(r.DayHigh&rtcDayHighDayBit) << 8) | int(r.DayLow)
}

func (r *RTC) toSeconds() uint64 {
	d := uint64(r.day())
	return d*86400 + uint64(r.Hours)*3600 + uint64(r.Minutes)*60 + uint64(r.Seconds)
}

func (r *RTC) fromSeconds(total uint64) {
	r.Seconds = uint8(total % 60)
	r.Minutes = uint8((total / 60) % 60)
	r.Hours = uint8((total / 3600) % 24)
	d := (total / 86400)

	if d > rtcMaxDay {
		r.DayHigh |= rtcDayHighCarry
		d %= rtcMaxDay + 1
	}

	r.DayLow = uint8(d & 0xFF)
	r.DayHigh = (r.DayHigh &^ rtcDayHighDayBit) | uint8((d>>8)&1)
}

// WriteLatch feeds a byte written to the 0x6000-0x7FFF latch register,
// latching the live registers on a 0x00-then-0x01 sequence.
func (r *RTC) WriteLatch(value uint8) {
	if r.prelatch && value == 0x01 {
		r.Sync()
		r.latchSeconds = r.Seconds
		r.latchMinutes = r.Minutes
		r.latchHours = r.Hours
		r.latchDayLow = r.DayLow
		r.latchDayHigh = r.DayHigh
		r.prelatch = false
		return
	}
	r.prelatch = value == 0x00
}

// ReadSelected returns the latched value of the RTC register chosen by the
// MBC3 RAM-bank/RTC-select register (0x08-0x0C).
func (r *RTC) ReadSelected(selector uint8) (uint8, bool) {
	switch selector {
	case 0x08:
		return r.latchSeconds, true
	case 0x09:
		return r.latchMinutes, true
	case 0x0A:
		return r.latchHours, true
	case 0x0B:
		return r.latchDayLow, true
	case 0x0C:
		return r.latchDayHigh, true
	default:
		return 0, false
	}
}

// WriteSelected writes directly to a live RTC register (not the latch),
// as permitted by real MBC3 hardware, then resyncs lastSync so elapsed
// time accumulates from this new baseline.
func (r *RTC) WriteSelected(selector uint8, value uint8) bool {
	r.Sync()
	switch selector {
	case 0x08:
		r.Seconds = value % 60
	case 0x09:
		r.Minutes = value % 60
	case 0x0A:
		r.Hours = value % 24
	case 0x0B:
		r.DayLow = value
	case 0x0C:
		r.DayHigh = value & (rtcDayHighDayBit | rtcDayHighHaltBit | rtcDayHighCarry)
	default:
		return false
	}
	return true
}
