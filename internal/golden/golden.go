package golden

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"

	"qspiboot.org/driver/genqspi"
	"qspiboot.org/trace"
)

// CompareTrace compares stores against the golden trace at path. If
// update is set, the golden trace is replaced instead.
func CompareTrace(path string, update bool, stores []genqspi.Store) error {
	if update {
		buf := new(bytes.Buffer)
		w, err := gzip.NewWriterLevel(buf, gzip.BestCompression)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := trace.Encode(w, trace.New(0, stores)); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return os.WriteFile(path, buf.Bytes(), 0o640)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	r, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	t, err := trace.Decode(r)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	golden := t.Register()
	for i := range min(len(stores), len(golden)) {
		if got, want := stores[i], golden[i]; got != want {
			return fmt.Errorf("store %d: got %s=%#08x, golden %s=%#08x", i, got.Reg, got.Value, want.Reg, want.Value)
		}
	}
	if len(stores) != len(golden) {
		return fmt.Errorf("%d stores, golden has %d", len(stores), len(golden))
	}
	return nil
}
