package common

import (
	"github.com/jpnorenam/disk-health/pkg/config"
	"github.com/jpnorenam/disk-health/pkg/ioctl"
)

type Context struct {
	Verbose bool
	Config  config.Config
	// Open acquires a drive handle; replaced with a mock opener in tests
	Open ioctl.OpenFunc
}
