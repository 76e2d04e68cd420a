// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadata

import (
	"fmt"
	"path"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/sirupsen/logrus"

	"github.com/jarulraj/fio/pkg/device"
)

const (
	// CPUModelNameKey defines a key in the platform metrics map
	CPUModelNameKey = "cpu_model"
	// CPUCountKey defines a key in the platform metrics map
	CPUCountKey = "cpu_count"
	// KernelVersionKey defines a key in the platform metrics map
	KernelVersionKey = "kernel_version"
	// PlatformKey defines a key in the platform metrics map
	PlatformKey = "platform"
	// MemoryTotalKey defines a key in the platform metrics map
	MemoryTotalKey = "memory_total"
)

// GetPlatformMetrics returns map of strings with platform metrics.
// If metric could not be retrieved value for the key is empty string.
func GetPlatformMetrics() map[string]string {
	platformMetrics := map[string]string{
		CPUModelNameKey:  "",
		CPUCountKey:      "",
		KernelVersionKey: "",
		PlatformKey:      "",
		MemoryTotalKey:   "",
	}

	if infos, err := cpu.Info(); err != nil || len(infos) == 0 {
		logrus.Warnf("GetPlatformMetrics: Failed to get %s metric. Skipping. Error: %v", CPUModelNameKey, err)
	} else {
		platformMetrics[CPUModelNameKey] = infos[0].ModelName
	}

	if count, err := cpu.Counts(true); err != nil {
		logrus.Warnf("GetPlatformMetrics: Failed to get %s metric. Skipping. Error: %v", CPUCountKey, err)
	} else {
		platformMetrics[CPUCountKey] = fmt.Sprintf("%d", count)
	}

	if info, err := host.Info(); err != nil {
		logrus.Warnf("GetPlatformMetrics: Failed to get %s metric. Skipping. Error: %v", KernelVersionKey, err)
	} else {
		platformMetrics[KernelVersionKey] = info.KernelVersion
		platformMetrics[PlatformKey] = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	}

	if memory, err := mem.VirtualMemory(); err != nil {
		logrus.Warnf("GetPlatformMetrics: Failed to get %s metric. Skipping. Error: %v", MemoryTotalKey, err)
	} else {
		platformMetrics[MemoryTotalKey] = humanize.IBytes(memory.Total)
	}

	return platformMetrics
}

// GetDeviceMetrics describes filesystem and drive behind every device directory.
// Keys are prefixed with device kind, e.g. "SSD_fstype". Missing information is skipped.
func GetDeviceMetrics(devices []device.Device) map[string]string {
	deviceMetrics := map[string]string{}

	partitions, err := disk.Partitions(false)
	if err != nil {
		logrus.Warnf("GetDeviceMetrics: Failed to list partitions. Skipping. Error: %v", err)
	}

	block, err := ghw.Block()
	if err != nil {
		logrus.Warnf("GetDeviceMetrics: Failed to list block devices. Skipping. Error: %v", err)
	}

	for _, dev := range devices {
		prefix := dev.Kind.String() + "_"
		deviceMetrics[prefix+"path"] = dev.Path

		if usage, err := disk.Usage(dev.Path); err != nil {
			logrus.Warnf("GetDeviceMetrics: Failed to get usage of %q. Skipping. Error: %v", dev.Path, err)
		} else {
			deviceMetrics[prefix+"fstype"] = usage.Fstype
			deviceMetrics[prefix+"total"] = humanize.IBytes(usage.Total)
			deviceMetrics[prefix+"free"] = humanize.IBytes(usage.Free)
		}

		partition, ok := mountOf(partitions, dev.Path)
		if !ok {
			continue
		}
		deviceMetrics[prefix+"mountpoint"] = partition.Mountpoint
		deviceMetrics[prefix+"block_device"] = partition.Device

		if drive := driveOf(block, partition.Device); drive != nil {
			deviceMetrics[prefix+"drive_type"] = drive.DriveType.String()
			deviceMetrics[prefix+"model"] = drive.Model
			deviceMetrics[prefix+"size"] = humanize.IBytes(drive.SizeBytes)
		}
	}

	return deviceMetrics
}

// mountOf returns partition with the longest mountpoint containing dir.
func mountOf(partitions []disk.PartitionStat, dir string) (disk.PartitionStat, bool) {
	dir = path.Clean(dir)
	best, found := disk.PartitionStat{}, false
	for _, partition := range partitions {
		mountpoint := path.Clean(partition.Mountpoint)
		if dir != mountpoint && !strings.HasPrefix(dir, strings.TrimSuffix(mountpoint, "/")+"/") {
			continue
		}
		if !found || len(mountpoint) > len(best.Mountpoint) {
			best, found = partition, true
		}
	}
	return best, found
}

// driveOf finds the disk owning block device (e.g. /dev/sdb1 belongs to sdb).
func driveOf(block *ghw.BlockInfo, blockDevice string) *ghw.Disk {
	if block == nil {
		return nil
	}
	name := path.Base(blockDevice)
	for _, drive := range block.Disks {
		if drive.Name == name {
			return drive
		}
		for _, partition := range drive.Partitions {
			if partition.Name == name {
				return drive
			}
		}
	}
	return nil
}
