package basic

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jpnorenam/disk-health/pkg/types"
	"github.com/jpnorenam/disk-health/pkg/utils"
	"gopkg.in/yaml.v3"
)

var (
	headerColor  = color.New(color.FgHiCyan, color.Bold)
	sectionColor = color.New(color.FgHiYellow)
	noticeColor  = color.New(color.FgHiYellow)
	hintColor    = color.New(color.Faint)
	valueColor   = color.New(color.FgHiCyan)
	serialColor  = color.New(color.FgHiMagenta)
)

func renderReport(w io.Writer, health *types.DiskHealth, format string) error {
	switch format {
	case "json":
		jsonString, err := json.MarshalIndent(health, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %s", err)
		}
		fmt.Fprintf(w, "%s\n", jsonString)
	case "yaml":
		yamlString, err := yaml.Marshal(health)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %s", err)
		}
		fmt.Fprintf(w, "%s", yamlString)
	case "text":
		writeText(w, health)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

// writeText prints the sections in query order. A section that could not be
// reported is replaced by its notice; skipped sections are left out.
func writeText(w io.Writer, health *types.DiskHealth) {
	headerColor.Fprintf(w, "\n=== Storage Device Information ===\n\n")

	notices := make(map[string]types.Notice, len(health.Notices))
	for _, n := range health.Notices {
		notices[n.Section] = n
	}

	sections := []struct {
		name    string
		present bool
		write   func()
	}{
		{types.SectionDevice, health.Device != nil, func() { writeDevice(w, health.Device) }},
		{types.SectionAdapter, health.Adapter != nil, func() { writeAdapter(w, health.Adapter) }},
		{types.SectionDeviceId, health.DeviceId != nil, func() { writeDeviceId(w, health.DeviceId) }},
		{types.SectionElementStatus, health.ElementStatus != nil, func() { writeElementStatus(w, health.ElementStatus) }},
	}

	for _, s := range sections {
		if s.present {
			s.write()
			continue
		}
		if n, found := notices[s.name]; found {
			noticeColor.Fprintf(w, "⚠ %s\n", n.Message)
			hintColor.Fprintln(w, "  (This is normal for some drives)")
		}
	}
}

func writeDevice(w io.Writer, d *types.DeviceDescriptor) {
	sectionColor.Fprintln(w, "► Device Properties:")
	fmt.Fprintf(w, "  Device Type: %s\n", codeString(d.DeviceType.Known(), d.DeviceType))
	fmt.Fprintf(w, "  Bus Type: %s\n", busTypeString(d.BusType))
	fmt.Fprintf(w, "  Removable: %t\n", d.Removable)
	fmt.Fprintf(w, "  Command Queueing: %t\n", d.CommandQueueing)
	if d.Vendor != nil {
		fmt.Fprintf(w, "  Vendor: %s\n", valueColor.Sprint(*d.Vendor))
	}
	if d.Product != nil {
		fmt.Fprintf(w, "  Product: %s\n", valueColor.Sprint(*d.Product))
	}
	if d.Revision != nil {
		fmt.Fprintf(w, "  Revision: %s\n", *d.Revision)
	}
	if d.SerialNumber != nil {
		fmt.Fprintf(w, "  Serial Number: %s\n", serialColor.Sprint(*d.SerialNumber))
	}
	writePartial(w, d.Partial)
	fmt.Fprintln(w)
}

// codeString dims codes outside the known set
func codeString(known bool, code fmt.Stringer) string {
	if !known {
		return hintColor.Sprint(code.String())
	}
	return code.String()
}

func busTypeString(b types.BusType) string {
	if !b.Known() {
		return codeString(false, b)
	}
	switch b {
	case types.BusTypeNvme:
		return color.HiGreenString(b.String())
	case types.BusTypeSata:
		return color.HiBlueString(b.String())
	}
	return b.String()
}

func writeAdapter(w io.Writer, a *types.AdapterDescriptor) {
	sectionColor.Fprintln(w, "► Adapter Properties:")
	fmt.Fprintf(w, "  Max Transfer Length: %d bytes (%s)\n", a.MaximumTransferLength, utils.FmtBytes(uint64(a.MaximumTransferLength)))
	fmt.Fprintf(w, "  Max Physical Pages: %d\n", a.MaximumPhysicalPages)
	fmt.Fprintf(w, "  Alignment Mask: 0x%X\n", a.AlignmentMask)
	fmt.Fprintf(w, "  Adapter Version: %d.%d\n", a.BusMajorVersion, a.BusMinorVersion)
	fmt.Fprintf(w, "  Command Queueing: %t\n", a.CommandQueueing)
	fmt.Fprintf(w, "  Accelerated Transfer: %t\n", a.AcceleratedTransfer)
	fmt.Fprintf(w, "  Adapter Scan Down: %t\n", a.AdapterScansDown)
	fmt.Fprintf(w, "  Adapter Uses PIO: %t\n", a.AdapterUsesPio)
	fmt.Fprintf(w, "  Bus Type: %d\n", a.BusType)
	fmt.Fprintf(w, "  Srb Type: %d\n", a.SrbType)
	fmt.Fprintf(w, "  Address Type: %d\n", a.AddressType)
	fmt.Fprintf(w, "  Size of Descriptor: %d bytes\n", a.Size)
	fmt.Fprintf(w, "  Version: %d\n", a.Version)
	writePartial(w, a.Partial)
	fmt.Fprintln(w)
}

func writeDeviceId(w io.Writer, d *types.DeviceIdDescriptor) {
	sectionColor.Fprintln(w, "► Device ID Properties:")
	fmt.Fprintf(w, "  Number of Identifiers: %d\n", d.NumberOfIdentifiers)
	if d.NumberOfIdentifiers > 0 {
		fmt.Fprintf(w, "  %d Device identifiers available\n", d.NumberOfIdentifiers)
	}
	writePartial(w, d.Partial)
	fmt.Fprintln(w)
}

func writeElementStatus(w io.Writer, s *types.ElementStatus) {
	sectionColor.Fprintln(w, "► Physical Element Status:")
	fmt.Fprintf(w, "  Version: %d\n", s.Version)
	fmt.Fprintf(w, "  Size: %d\n", s.Size)
	fmt.Fprintf(w, "  Element Identifier: %d\n", s.ElementIdentifier)
	fmt.Fprintln(w, "  Health Status:")
	fmt.Fprintf(w, "    %s\n", healthString(s.Health))
	writePartial(w, s.Partial)
	fmt.Fprintln(w)
}

func healthString(h types.ElementHealth) string {
	if !h.Known() {
		return codeString(false, h)
	}
	switch h {
	case types.HealthHealthy:
		return color.GreenString(h.String())
	case types.HealthWarning:
		return color.YellowString(h.String())
	case types.HealthCritical:
		return color.New(color.FgRed, color.Bold).Sprint(h.String())
	}
	return h.String()
}

func writePartial(w io.Writer, partial bool) {
	if partial {
		hintColor.Fprintln(w, "  (Descriptor is larger than the returned data, some fields may be missing)")
	}
}
