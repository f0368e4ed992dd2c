//go:build !linux && !tinygo

package genqspi

import "errors"

func OpenUIO(dev string) (*Mapping, error) {
	return nil, errors.New("genqspi: UIO is only supported on Linux")
}
