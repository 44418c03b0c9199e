package abi

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/Binject/debug/elf"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/carved4/go-rawcall/pkg/log"
)

// e_flags bit marking a 32-bit mips object as n32 rather than o32.
const efMIPSABI2 = 0x20

// DetectFile reports which syscall convention the ELF binary at path
// would trap with.
func DetectFile(path string) (*Convention, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	switch f.Machine {
	case elf.EM_X86_64:
		return &AMD64, nil
	case elf.EM_AARCH64:
		return &ARM64, nil
	case elf.EM_MIPS:
		if f.Class == elf.ELFCLASS64 {
			return &MIPS64, nil
		}
		flags, err := headerFlags(path, f.Class, f.ByteOrder)
		if err != nil {
			return nil, err
		}
		if flags&efMIPSABI2 != 0 {
			return &MIPSN32, nil
		}
		return &MIPS, nil
	}
	return nil, errors.Errorf("%s: no syscall convention for %s/%s", path, f.Class, f.Machine)
}

// headerFlags reads e_flags, which the elf package parses but doesn't keep.
func headerFlags(path string, class elf.Class, order binary.ByteOrder) (uint32, error) {
	off := int64(0x24)
	if class == elf.ELFCLASS64 {
		off = 0x30
	}
	fh, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", path)
	}
	defer fh.Close()

	var b [4]byte
	if _, err := fh.ReadAt(b[:], off); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, errors.Wrapf(err, "read e_flags of %s", path)
	}
	return order.Uint32(b[:]), nil
}

// Detector caches DetectFile results by path.
type Detector struct {
	cache *lru.Cache
}

func NewDetector(size int) (*Detector, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "detector cache")
	}
	return &Detector{cache: cache}, nil
}

func (d *Detector) Detect(path string) (*Convention, error) {
	if c, ok := d.cache.Get(path); ok {
		log.L.Trace("abi cache hit", "path", path)
		return c.(*Convention), nil
	}
	c, err := DetectFile(path)
	if err != nil {
		return nil, err
	}
	log.L.Debug("detected syscall abi", "path", path, "arch", c.Arch)
	d.cache.Add(path, c)
	return c, nil
}

// Len reports how many paths are cached.
func (d *Detector) Len() int {
	return d.cache.Len()
}
