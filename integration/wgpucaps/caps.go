// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpucaps

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/ggspy"
)

// ErrNoAdapter is returned when no wgpu adapter is available to
// describe.
var ErrNoAdapter = errors.New("wgpucaps: no adapter")

// AdapterInfo describes the GPU behind adapterID.
func AdapterInfo(adapterID core.AdapterID) (*ggspy.DeviceInfo, error) {
	if adapterID.IsZero() {
		return nil, ErrNoAdapter
	}

	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return nil, fmt.Errorf("wgpucaps: get adapter info: %w", err)
	}

	return &ggspy.DeviceInfo{
		Name:       info.Name,
		Vendor:     info.Vendor,
		DeviceType: fmt.Sprint(info.DeviceType),
		Backend:    fmt.Sprint(info.Backend),
		Driver:     info.Driver,
	}, nil
}

// Collect combines adapter metadata with the host surface format.
// Either source may be absent: a zero adapterID yields device fields
// from the provider only, a nil provider leaves the surface format
// unset. Collect fails only when both sources are absent.
func Collect(adapterID core.AdapterID, provider gpucontext.DeviceProvider) (*ggspy.DeviceInfo, error) {
	info, err := AdapterInfo(adapterID)
	if err != nil {
		if provider == nil {
			return nil, err
		}
		ggspy.Logger().Debug("adapter metadata unavailable", "err", err)
		info = &ggspy.DeviceInfo{}
	}

	if provider != nil {
		info.SurfaceFormat = provider.SurfaceFormat()
	}
	return info, nil
}
