// Package ioprio reads and writes the Linux I/O priority of processes,
// process groups and users, and encodes and decodes the 16-bit priority
// mask itself.
//
// The mask layout is only defined in linux/ioprio.h and the kernel's
// Documentation/block/ioprio.rst: the top three bits carry the scheduling
// class and the remaining thirteen carry per-class data, which for the
// realtime and best-effort classes is a level from 0 (highest) to 7
// (lowest). The layout has been stable since the interface appeared in
// Linux 2.6.13. Note that the priority only takes effect under I/O
// schedulers that honor it, such as BFQ or the legacy CFQ.
//
// The same mask travels through other kernel surfaces, for example the
// ioprio field of an io_uring submission queue entry or a Linux AIO iocb;
// Inner and FromInner convert to and from the raw representation for those
// uses.
//
// Refer to ioprio_set(2) for the details of the underlying system calls.
package ioprio

import "fmt"

const (
	classShift = 13
	dataMask   = 1<<classShift - 1
)

// Priority is an I/O priority mask: either a scheduling class with its
// per-class data, or the standard priority, which names no class and lets
// the scheduler derive one from the process nice value.
type Priority struct {
	inner uint16
}

// New encodes a class and its level into a priority mask.
func New(class Class) Priority {
	return Priority{inner: uint16(class.kind)<<classShift | class.data()}
}

// Standard returns the standard priority, with a raw value of zero. It
// decodes to no class: the kernel uses it to report that no priority has
// been set explicitly.
func Standard() Priority {
	return Priority{}
}

// FromInner wraps a raw priority mask verbatim. No validation happens
// here; Class reports whether the bits actually name a class. Use it for
// values obtained from other kernel interfaces that carry the same mask.
func FromInner(inner uint16) Priority {
	return Priority{inner: inner}
}

// Inner returns the raw priority mask, suitable for handing to other
// kernel interfaces such as the ioprio field of an io_uring submission
// queue entry.
func (p Priority) Inner() uint16 {
	return p.inner
}

// Class decodes the scheduling class from the mask. The second return
// value is false when the class bits are unset or reserved, or when the
// per-class data is out of range for the class named. The data bits of an
// idle mask are ignored, matching the kernel's own tolerance.
func (p Priority) Class() (Class, bool) {
	data := p.inner & dataMask
	switch Kind(p.inner >> classShift) {
	case KindRealtime:
		if data > maxLevel {
			return Class{}, false
		}
		return Class{kind: KindRealtime, level: uint8(data)}, true
	case KindBestEffort:
		if data > maxLevel {
			return Class{}, false
		}
		return Class{kind: KindBestEffort, level: uint8(data)}, true
	case KindIdle:
		return Idle(), true
	}
	return Class{}, false
}

// Compare orders two priorities by scheduling precedence of their decoded
// classes. The order is partial: the second return value is false when
// either side does not decode to a class, as such masks have no defined
// scheduling meaning to compare.
func (p Priority) Compare(other Priority) (int, bool) {
	pc, ok := p.Class()
	if !ok {
		return 0, false
	}
	oc, ok := other.Class()
	if !ok {
		return 0, false
	}
	return pc.Compare(oc), true
}

func (p Priority) String() string {
	if class, ok := p.Class(); ok {
		return class.String()
	}
	if p.inner == 0 {
		return "none"
	}
	return fmt.Sprintf("%#04x", p.inner)
}
