//go:build linux && !tinygo

package genqspi

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// OpenUIO maps the register block exposed as the first memory
// map of a UIO device, such as /dev/uio0.
func OpenUIO(dev string) (*Mapping, error) {
	m, err := readUIOMap("/sys", dev)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(dev, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("genqspi: %w", err)
	}
	defer f.Close()
	// UIO selects map N through the offset N*pagesize, and maps
	// from the start of the page containing the region.
	const mapIndex = 0
	pageSize := unix.Getpagesize()
	mem, err := unix.Mmap(int(f.Fd()), mapIndex*int64(pageSize), m.mapLength(pageSize), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("genqspi: mmap %s: %w", dev, err)
	}
	block := mem[m.offset : m.offset+BlockSize]
	words := unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(block))), len(block)/4)
	w, err := NewWords(words)
	if err != nil {
		unix.Munmap(mem)
		return nil, err
	}
	return &Mapping{
		Words: w,
		close: func() error { return unix.Munmap(mem) },
	}, nil
}
