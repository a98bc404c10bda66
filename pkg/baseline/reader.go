package baseline

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// reader exposes a baseline file's bytes, memory-mapped when the OS
// allows it and read into memory otherwise. Baselines for large screens
// run to hundreds of kilobytes and watch mode re-compares them on every
// change, so avoiding repeated full reads is worth the mapping.
type reader struct {
	data mmap.MMap
	file *os.File

	// fallback holds the bytes when mmap failed; data is nil then.
	fallback []byte
}

func openReader(path string) (*reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.Size() == 0 {
		f.Close()
		return &reader{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, readErr
		}
		return &reader{fallback: data}, nil
	}
	return &reader{data: m, file: f}, nil
}

func (r *reader) Bytes() []byte {
	if r.data != nil {
		return r.data
	}
	return r.fallback
}

func (r *reader) Close() error {
	var err error
	if r.data != nil {
		err = r.data.Unmap()
		r.data = nil
	}
	if r.file != nil {
		if cerr := r.file.Close(); err == nil {
			err = cerr
		}
		r.file = nil
	}
	return err
}
