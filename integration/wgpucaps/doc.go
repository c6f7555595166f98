// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpucaps collects GPU device metadata for captures taken on
// gogpu/wgpu-backed hosts.
//
// Hosts that render through gogpu/wgpu hold a core.AdapterID and
// usually a gpucontext.DeviceProvider; Collect turns both into a
// ggspy.DeviceInfo suitable for [ggspy.WithDeviceInfo]:
//
//	info, err := wgpucaps.Collect(adapterID, app.GPUContextProvider())
//	if err != nil {
//	    log.Printf("no device metadata: %v", err)
//	}
//	mgr := ggspy.NewManager(loop, ggspy.WithDeviceInfo(info))
package wgpucaps
