// +build linux

package ioprio

import (
	"golang.org/x/sys/unix"
)

// Get returns the I/O priority of the processes matched by target. When
// the target matches several processes with differing priorities, the
// kernel reports the highest ranked of them.
//
// The returned priority is the raw kernel value, not decoded; call Class
// on it to interpret the mask. A kernel failure is returned verbatim as a
// unix.Errno — typically unix.ESRCH when the target matches no process.
//
// Refer to ioprio_get(2).
func Get(target Target) (Priority, error) {
	mask, _, errno := unix.Syscall(unix.SYS_IOPRIO_GET,
		uintptr(target.who), uintptr(target.id), 0)
	if errno != 0 {
		return Priority{}, errno
	}
	return Priority{inner: uint16(mask)}, nil
}

// Set assigns an I/O priority to the processes matched by target. The mask
// is passed to the kernel verbatim, including raw values constructed with
// FromInner that decode to no class.
//
// Assigning the realtime class requires CAP_SYS_ADMIN, and modifying
// another user's processes requires matching credentials or CAP_SYS_NICE;
// the kernel reports a missing capability as unix.EPERM, returned here
// unchanged.
//
// Refer to ioprio_set(2).
func Set(target Target, priority Priority) error {
	_, _, errno := unix.Syscall(unix.SYS_IOPRIO_SET,
		uintptr(target.who), uintptr(target.id), uintptr(priority.inner))
	if errno != 0 {
		return errno
	}
	return nil
}
