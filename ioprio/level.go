package ioprio

// Levels within the realtime and best-effort classes range from 0 to 7,
// with the order reversed: level 0 is the highest priority and level 7 the
// lowest. For realtime the level controls how long the timeslices granted
// by the I/O scheduler are; for best-effort it controls the share of
// bandwidth.

const maxLevel = 7

// RealtimeLevel is a validated priority level of the realtime class.
type RealtimeLevel struct {
	inner uint8
}

// NewRealtimeLevel wraps an underlying level. The second return value is
// false if the level exceeds 7.
func NewRealtimeLevel(level int) (RealtimeLevel, bool) {
	if level < 0 || level > maxLevel {
		return RealtimeLevel{}, false
	}
	return RealtimeLevel{inner: uint8(level)}, true
}

// HighestRealtimeLevel returns the highest realtime level, 0.
func HighestRealtimeLevel() RealtimeLevel {
	return RealtimeLevel{inner: 0}
}

// LowestRealtimeLevel returns the lowest realtime level, 7.
func LowestRealtimeLevel() RealtimeLevel {
	return RealtimeLevel{inner: maxLevel}
}

// Level returns the underlying level, ranging from 0 to 7.
func (l RealtimeLevel) Level() int {
	return int(l.inner)
}

// Compare returns -1, 0 or 1 depending on whether l ranks below, equal to
// or above other. Lower underlying levels rank higher.
func (l RealtimeLevel) Compare(other RealtimeLevel) int {
	return compareLevel(l.inner, other.inner)
}

func (l RealtimeLevel) data() uint16 {
	return uint16(l.inner)
}

// BestEffortLevel is a validated priority level of the best-effort class.
type BestEffortLevel struct {
	inner uint8
}

// NewBestEffortLevel wraps an underlying level. The second return value is
// false if the level exceeds 7.
func NewBestEffortLevel(level int) (BestEffortLevel, bool) {
	if level < 0 || level > maxLevel {
		return BestEffortLevel{}, false
	}
	return BestEffortLevel{inner: uint8(level)}, true
}

// HighestBestEffortLevel returns the highest best-effort level, 0.
func HighestBestEffortLevel() BestEffortLevel {
	return BestEffortLevel{inner: 0}
}

// FallbackBestEffortLevel returns the level the kernel falls back to when
// no priority has been set explicitly, 4.
func FallbackBestEffortLevel() BestEffortLevel {
	return BestEffortLevel{inner: 4}
}

// LowestBestEffortLevel returns the lowest best-effort level, 7.
func LowestBestEffortLevel() BestEffortLevel {
	return BestEffortLevel{inner: maxLevel}
}

// Level returns the underlying level, ranging from 0 to 7.
func (l BestEffortLevel) Level() int {
	return int(l.inner)
}

// Compare returns -1, 0 or 1 depending on whether l ranks below, equal to
// or above other. Lower underlying levels rank higher.
func (l BestEffortLevel) Compare(other BestEffortLevel) int {
	return compareLevel(l.inner, other.inner)
}

func (l BestEffortLevel) data() uint16 {
	return uint16(l.inner)
}

func compareLevel(a, b uint8) int {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	}
	return 0
}
