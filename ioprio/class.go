package ioprio

import "strconv"

// Kind identifies an I/O scheduling class. The values are the class tags
// from linux/ioprio.h, occupying the top three bits of the priority mask.
type Kind uint16

const (
	// KindNone means no class has been set explicitly. It is not a real
	// scheduling class and cannot be carried by a Class value.
	KindNone Kind = iota
	// KindRealtime is IOPRIO_CLASS_RT.
	KindRealtime
	// KindBestEffort is IOPRIO_CLASS_BE.
	KindBestEffort
	// KindIdle is IOPRIO_CLASS_IDLE.
	KindIdle
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRealtime:
		return "realtime"
	case KindBestEffort:
		return "best-effort"
	case KindIdle:
		return "idle"
	}
	return "invalid"
}

// Class is one of the three I/O scheduling classes, carrying the per-class
// level for realtime and best-effort. The zero value is not a valid class;
// construct one with Realtime, BestEffort or Idle and branch on Kind.
type Class struct {
	kind  Kind
	level uint8
}

// Realtime returns the realtime class (IOPRIO_CLASS_RT) with the given
// level. Assigning it requires CAP_SYS_ADMIN, as it can starve the I/O of
// the entire system.
func Realtime(level RealtimeLevel) Class {
	return Class{kind: KindRealtime, level: level.inner}
}

// BestEffort returns the best-effort class (IOPRIO_CLASS_BE) with the
// given level. This is the class the kernel schedules by default.
func BestEffort(level BestEffortLevel) Class {
	return Class{kind: KindBestEffort, level: level.inner}
}

// Idle returns the idle class (IOPRIO_CLASS_IDLE). I/O submitted under it
// is only scheduled when the device is otherwise idle. This is the lowest
// possible priority and needs no capability to assign (on kernels from
// 2.6.25 on).
func Idle() Class {
	return Class{kind: KindIdle}
}

// Kind returns which of the three classes c is.
func (c Class) Kind() Kind {
	return c.kind
}

// RealtimeLevel returns the level carried by a realtime class. The second
// return value is false for the other classes.
func (c Class) RealtimeLevel() (RealtimeLevel, bool) {
	if c.kind != KindRealtime {
		return RealtimeLevel{}, false
	}
	return RealtimeLevel{inner: c.level}, true
}

// BestEffortLevel returns the level carried by a best-effort class. The
// second return value is false for the other classes.
func (c Class) BestEffortLevel() (BestEffortLevel, bool) {
	if c.kind != KindBestEffort {
		return BestEffortLevel{}, false
	}
	return BestEffortLevel{inner: c.level}, true
}

// rank orders the classes by scheduling precedence, regardless of level.
func (c Class) rank() int {
	switch c.kind {
	case KindRealtime:
		return 2
	case KindBestEffort:
		return 1
	}
	return 0
}

// Compare returns -1, 0 or 1 depending on whether c ranks below, equal to
// or above other. Any realtime class outranks any best-effort class, which
// outranks idle; within the same class the levels decide, reversed. Two
// idle classes are always equal.
func (c Class) Compare(other Class) int {
	switch {
	case c.rank() < other.rank():
		return -1
	case c.rank() > other.rank():
		return 1
	}
	if c.kind == KindIdle {
		return 0
	}
	return compareLevel(c.level, other.level)
}

func (c Class) String() string {
	if c.kind == KindIdle {
		return c.kind.String()
	}
	return c.kind.String() + "/" + strconv.Itoa(int(c.level))
}

func (c Class) data() uint16 {
	if c.kind == KindIdle {
		return 0
	}
	return uint16(c.level)
}
