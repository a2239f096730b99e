package common

import (
	"errors"
	"fmt"

	"github.com/jpnorenam/disk-health/pkg/ioctl"
	"github.com/jpnorenam/disk-health/pkg/utils"
)

func SuggestElevatedPrompt() string {
	return "Raw drive access requires administrator rights. Run the command again from an elevated prompt."
}

func SuggestListDrives(instanceName string) string {
	return fmt.Sprintf("Run \"%s list-drives\" to see the drives that can be opened.", instanceName)
}

// OpenFailureHint returns a suggestion for a drive that could not be opened,
// or an empty string if there is nothing the user can do about it.
func OpenFailureHint(err error, instanceName string) string {
	var handleErr *ioctl.HandleError
	if !errors.As(err, &handleErr) {
		return ""
	}
	if errors.Is(err, ioctl.ErrPlatform) {
		return ""
	}
	if !utils.IsElevated() {
		return SuggestElevatedPrompt()
	}
	return SuggestListDrives(instanceName)
}
