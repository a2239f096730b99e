package disk

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jpnorenam/disk-health/pkg/ioctl"
)

// ErrTruncated matches any response shorter than its descriptor header.
var ErrTruncated = errors.New("response truncated")

type TruncatedError struct {
	Property ioctl.PropertyKind
	Got      int
	Want     int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%s response is %d bytes, need at least %d", e.Property, e.Got, e.Want)
}

func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

func checkLength(property ioctl.PropertyKind, raw []byte, want int) error {
	if len(raw) < want {
		return &TruncatedError{Property: property, Got: len(raw), Want: want}
	}
	return nil
}

// Field readers. Callers check the length against the header size first.

func u16(raw []byte, offset int) uint16 {
	return binary.LittleEndian.Uint16(raw[offset:])
}

func u32(raw []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(raw[offset:])
}

func flag(raw []byte, offset int) bool {
	return raw[offset] != 0
}

// partial reports whether a descriptor declares more bytes than were returned.
func partial(raw []byte) bool {
	return uint64(u32(raw, 4)) > uint64(len(raw))
}
