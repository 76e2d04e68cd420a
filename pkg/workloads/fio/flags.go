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

package fio

import (
	"time"

	"github.com/jarulraj/fio/pkg/conf"
)

var (
	pathFlag       = conf.NewStringFlag("fio_path", "Path to fio binary", "fio")
	ioEngineFlag   = conf.NewStringFlag("fio_ioengine", "fio I/O engine (--ioengine)", "sync")
	randRepeatFlag = conf.NewIntFlag("fio_randrepeat", "Seed random generator the same way every run (--randrepeat)", 1)
	nameFlag       = conf.NewStringFlag("fio_name", "fio job name (--name)", "test")
	ioDepthFlag    = conf.NewIntFlag("fio_iodepth", "Number of I/O units kept in flight (--iodepth)", 1)
	syncFlag       = conf.NewIntFlag("fio_sync", "Use synchronous I/O for buffered writes (--sync)", 1)
	directFlag     = conf.NewIntFlag("fio_direct", "Use non-buffered I/O (--direct)", 1)
	sizeFlag       = conf.NewStringFlag("fio_size", "Total size of I/O for the job (--size)", "64G")
	runtimeFlag    = conf.NewDurationFlag("fio_runtime", "Duration of a single fio run (--runtime)", 10*time.Second)
	outputFlag     = conf.NewStringFlag("fio_output", "File fio writes its report to (--output)", "fio.txt")
	maxJobsFlag    = conf.NewIntFlag("fio_max_jobs", "Maximum number of threads/processes (--max-jobs)", 1)
	fileNameFlag   = conf.NewStringFlag("fio_file_name", "Name of test file created on every device", "fio")
)
