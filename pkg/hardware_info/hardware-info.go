package hardware_info

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpnorenam/disk-health/pkg/hardware_info/disk"
	"github.com/jpnorenam/disk-health/pkg/ioctl"
	"github.com/jpnorenam/disk-health/pkg/types"
)

type Options struct {
	// SkipElementStatus leaves out the optional physical element status query.
	SkipElementStatus bool
	Verbose           bool
}

type step struct {
	section string
	kind    ioctl.PropertyKind
	query   func(ioctl.Handle, *types.DiskHealth) error
}

var steps = []step{
	{types.SectionDevice, ioctl.DeviceProperty, func(h ioctl.Handle, health *types.DiskHealth) (err error) {
		health.Device, err = disk.DeviceInfo(h)
		return err
	}},
	{types.SectionAdapter, ioctl.AdapterProperty, func(h ioctl.Handle, health *types.DiskHealth) (err error) {
		health.Adapter, err = disk.AdapterInfo(h)
		return err
	}},
	{types.SectionDeviceId, ioctl.DeviceIdProperty, func(h ioctl.Handle, health *types.DiskHealth) (err error) {
		health.DeviceId, err = disk.DeviceIdInfo(h)
		return err
	}},
	{types.SectionElementStatus, ioctl.PhysicalElementStatus, func(h ioctl.Handle, health *types.DiskHealth) (err error) {
		health.ElementStatus, err = disk.ElementStatusInfo(h)
		return err
	}},
}

// Get opens the drive, runs each property query once in a fixed order and
// closes the drive again. A failed query becomes a notice and the remaining
// queries still run. Only failing to open the drive is returned as an error.
func Get(open ioctl.OpenFunc, drivePath string, opts Options) (*types.DiskHealth, error) {
	handle, err := open(drivePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		// Best effort, the report is already complete.
		if err := handle.Close(); err != nil && opts.Verbose {
			log.Printf("Ignoring error closing %s: %v", drivePath, err)
		}
	}()

	health := types.DiskHealth{Drive: drivePath}

	for _, s := range steps {
		if s.kind == ioctl.PhysicalElementStatus && opts.SkipElementStatus {
			continue
		}

		err := s.query(handle, &health)
		if err != nil {
			if opts.Verbose {
				log.Printf("%s: %v", s.kind, err)
			}
			health.Notices = append(health.Notices, newNotice(s.section, s.kind, err))
		}
	}

	if opts.Verbose {
		log.Printf("%s: %d sections reported, %d notices", drivePath, health.Supported(), len(health.Notices))
	}

	return &health, nil
}

func newNotice(section string, kind ioctl.PropertyKind, err error) types.Notice {
	message := fmt.Sprintf("%s not supported on this drive", kind)

	// Anything other than an explicit rejection or a short response is still
	// skipped, but worded as a failure.
	if !errors.Is(err, ioctl.ErrUnsupported) && !errors.Is(err, disk.ErrTruncated) {
		message = fmt.Sprintf("%s query failed", kind)
	}

	return types.Notice{
		Section: section,
		Message: message,
		Reason:  err.Error(),
	}
}

// ProbeDrives returns the paths of the physical drives among the first max
// that can be opened.
func ProbeDrives(open ioctl.OpenFunc, max int) []string {
	var drives []string
	for i := 0; i < max; i++ {
		path := ioctl.DrivePath(i)
		h, err := open(path)
		if err != nil {
			continue
		}
		_ = h.Close()
		drives = append(drives, path)
	}
	return drives
}

// Fixture files per property, holding hex encoded raw responses.
var fixtureFiles = map[ioctl.PropertyKind]string{
	ioctl.DeviceProperty:        "device.hex",
	ioctl.AdapterProperty:       "adapter.hex",
	ioctl.DeviceIdProperty:      "device-id.hex",
	ioctl.PhysicalElementStatus: "element-status.hex",
}

// GetFromRawData is mainly used during testing, but also from other packages, and therefore needs to be exported.
// It replays the captured responses of a machine; properties without a fixture behave as unsupported.
func GetFromRawData(t *testing.T, machine string, testDir string) (*types.DiskHealth, error) {
	handle := ioctl.NewMockHandle()

	machinePath := filepath.Join(testDir, "machines", machine)
	for kind, name := range fixtureFiles {
		data, err := os.ReadFile(filepath.Join(machinePath, name))
		if err != nil {
			if os.IsNotExist(err) {
				// No capture, the drive did not answer this query
				continue
			}
			t.Fatal(err)
		}

		raw, err := DecodeHex(string(data))
		if err != nil {
			t.Fatalf("error decoding %s/%s: %v", machine, name, err)
		}
		handle.Responses[kind] = raw
	}

	health, err := Get(handle.Opener(), ioctl.DrivePath(0), Options{})
	if err != nil {
		return nil, err
	}
	if handle.CloseCalls != 1 {
		t.Fatalf("drive closed %d times, expected once", handle.CloseCalls)
	}

	return health, nil
}

// DecodeHex decodes hex text that may contain whitespace and # comments.
func DecodeHex(text string) ([]byte, error) {
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line, _, _ = strings.Cut(line, "#")
		sb.WriteString(strings.Join(strings.Fields(line), ""))
	}
	return hex.DecodeString(sb.String())
}
