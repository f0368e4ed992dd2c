//go:build !tinygo

package genqspi

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// uioMap describes memory map 0 of a UIO device.
type uioMap struct {
	// offset is the start of the mapped region within its page.
	offset int
	size   int
}

// readUIOMap reads the attributes of map 0 of dev, such as
// /dev/uio0, from the sysfs tree rooted at sysfs.
func readUIOMap(sysfs, dev string) (uioMap, error) {
	dir := filepath.Join(sysfs, "class", "uio", filepath.Base(dev), "maps", "map0")
	size, err := readSysfsUint(filepath.Join(dir, "size"))
	if err != nil {
		return uioMap{}, err
	}
	offset, err := readSysfsUint(filepath.Join(dir, "offset"))
	if err != nil {
		return uioMap{}, err
	}
	if size < BlockSize {
		return uioMap{}, fmt.Errorf("genqspi: %s map0 size %#x is smaller than the register block", dev, size)
	}
	return uioMap{offset: int(offset), size: int(size)}, nil
}

func readSysfsUint(path string) (uint64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("genqspi: %w", err)
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(b)), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("genqspi: %s: %w", path, err)
	}
	return v, nil
}

// mapLength returns the page-aligned mmap length covering the
// register block at m.offset.
func (m uioMap) mapLength(pageSize int) int {
	return (m.offset + BlockSize + pageSize - 1) &^ (pageSize - 1)
}
