package ggspy

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// DeviceInfo describes the GPU a capture was taken on.
//
// Hosts that render through gogpu/wgpu can collect this with
// integration/wgpucaps and attach it to every capture via
// [WithDeviceInfo]; other hosts may fill it in by hand.
type DeviceInfo struct {
	// Name is the GPU name (e.g. "NVIDIA GeForce RTX 3080").
	Name string `json:"name,omitempty"`

	// Vendor is the GPU vendor.
	Vendor string `json:"vendor,omitempty"`

	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType string `json:"deviceType,omitempty"`

	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend string `json:"backend,omitempty"`

	// Driver is the driver version string.
	Driver string `json:"driver,omitempty"`

	// SurfaceFormat is the host surface's texture format, when known.
	SurfaceFormat gputypes.TextureFormat `json:"surfaceFormat,omitempty"`
}

// String returns a human-readable description of the device.
func (d *DeviceInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", d.Name, d.DeviceType, d.Backend)
}
