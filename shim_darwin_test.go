//go:build darwin && cgo

package posixshim

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"golang.org/x/sys/unix"
)

func TestDarwinSentinelValues(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"RTLD_DEFAULT", uintptr(Default()), ^uintptr(1)},
		{"RTLD_NEXT", uintptr(Next()), ^uintptr(0)},
		{"RTLD_MAIN_ONLY", uintptr(MainOnly()), ^uintptr(4)},
		{"RTLD_FIRST", uintptr(First()), 0x100},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Expected %s %#x, got %#x", tt.name, tt.want, tt.got)
		}
	}

	if MainOnly() != MainOnly() || First() != First() {
		t.Error("Expected darwin sentinels to be stable across calls")
	}
}

func TestDarwinManifest(t *testing.T) {
	want := []string{"RTLD_DEFAULT", "RTLD_FIRST", "RTLD_MAIN_ONLY", "RTLD_NEXT", "fork", "shm_open"}
	got := names(Manifest())
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	p, _ := Lookup("shm_open")
	if p.Reason != ReasonVariadic {
		t.Errorf("Expected shm_open reason variadic, got %s", p.Reason)
	}
}

// shmName stays under the 31 byte PSHMNAMLEN limit.
func shmName(t *testing.T, tag string) string {
	name := fmt.Sprintf("/pshim-%s-%d", tag, unix.Getpid())
	t.Cleanup(func() { _ = ShmUnlink(name) })
	return name
}

func TestShmOpenExclusiveCreate(t *testing.T) {
	name := shmName(t, "excl")

	fd, err := ShmOpen(name, unix.O_CREAT|unix.O_RDWR, 0600)
	if err != nil {
		t.Fatalf("Failed to create segment: %v", err)
	}
	if fd < 0 {
		t.Fatalf("Expected valid descriptor, got %d", fd)
	}
	unix.Close(fd)

	fd, err = ShmOpen(name, unix.O_CREAT|unix.O_EXCL|unix.O_RDWR, 0600)
	if fd != -1 {
		t.Errorf("Expected -1 on exclusive re-create, got %d", fd)
		unix.Close(fd)
	}
	if err != unix.EEXIST {
		t.Errorf("Expected EEXIST, got %v", err)
	}
	if !errors.Is(err, unix.EEXIST) {
		t.Errorf("Expected errors.Is(err, EEXIST) to hold for %v", err)
	}
}

func TestShmOpenMissing(t *testing.T) {
	name := shmName(t, "none")

	fd, err := ShmOpen(name, unix.O_RDWR, 0)
	if fd != -1 || err != unix.ENOENT {
		t.Errorf("Expected (-1, ENOENT), got (%d, %v)", fd, err)
	}
}

func TestShmOpenNameTooLong(t *testing.T) {
	name := "/pshim-" + fmt.Sprintf("%064d", 0)

	fd, err := ShmOpen(name, unix.O_CREAT|unix.O_RDWR, 0600)
	if fd != -1 || err != unix.ENAMETOOLONG {
		t.Errorf("Expected (-1, ENAMETOOLONG), got (%d, %v)", fd, err)
	}
}

func TestShmOpenNulInName(t *testing.T) {
	fd, err := ShmOpen("/pshim\x00bad", unix.O_CREAT|unix.O_RDWR, 0600)
	if fd != -1 || err != unix.EINVAL {
		t.Errorf("Expected (-1, EINVAL), got (%d, %v)", fd, err)
	}
}

func TestShmUnlinkMissing(t *testing.T) {
	if err := ShmUnlink(fmt.Sprintf("/pshim-gone-%d", unix.Getpid())); err != unix.ENOENT {
		t.Errorf("Expected ENOENT, got %v", err)
	}
}

func TestForkChildExitStatus(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	pid, err := Fork()
	if pid == 0 {
		Exit(42)
	}
	if err != nil {
		t.Fatalf("Failed to fork: %v", err)
	}
	if pid < 0 {
		t.Fatalf("Expected positive pid, got %d", pid)
	}

	var ws unix.WaitStatus
	wpid, err := unix.Wait4(pid, &ws, 0, nil)
	if err != nil {
		t.Fatalf("Failed to wait for child: %v", err)
	}
	if wpid != pid {
		t.Errorf("Expected reaped pid %d, got %d", pid, wpid)
	}
	if !ws.Exited() || ws.ExitStatus() != 42 {
		t.Errorf("Expected child exit status 42, got %v", ws)
	}
}
