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

package main

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/jarulraj/fio/pkg/conf"
	"github.com/jarulraj/fio/pkg/executor"
	"github.com/jarulraj/fio/pkg/experiment"
	"github.com/jarulraj/fio/pkg/experiment/logger"
	"github.com/jarulraj/fio/pkg/metadata"
	"github.com/jarulraj/fio/pkg/publisher"
	"github.com/jarulraj/fio/pkg/results"
	"github.com/jarulraj/fio/pkg/utils/errutil"
	"github.com/jarulraj/fio/pkg/utils/uuid"
	"github.com/jarulraj/fio/pkg/visualization"
)

var (
	appName  = os.Args[0]
	runFlag  = conf.NewBoolFlag("fio", "Run fio on every configured device", false)
	plotFlag = conf.NewBoolFlag("fio_plot", "Plot stored fio results", false)
)

func init() {
	runFlag.Short('f')
	plotFlag.Short('a')
}

func main() {
	experimentStart := time.Now()

	// Parsing flags, configuring log level, dumping the configuration (if requested).
	conf.SetAppName("fio-eval")
	conf.SetHelp("Benchmark storage devices with fio and plot the results.")
	experiment.Configure()

	if !runFlag.Value() && !plotFlag.Value() {
		logrus.Errorf("Nothing to do: use --fio to run benchmarks and/or --fio_plot to plot results")
		os.Exit(experiment.ExUsage)
	}

	config, err := experiment.ConfigFromFlags()
	errutil.CheckWithContext(err, "Invalid sweep configuration")

	osFs := afero.NewOsFs()
	store := results.New(osFs, experiment.ResultsDirFlag.Value(), experiment.ResultsFileFlag.Value())

	if runFlag.Value() {
		runSweep(experimentStart, config, store, osFs)
	}

	if plotFlag.Value() {
		renderer := visualization.NewRenderer(store, osFs, experiment.ChartsDirFlag.Value())
		err = renderer.RenderAll(config.Modes, config.Devices)
		errutil.CheckWithContext(err, "Cannot plot fio results")
		printSummary(config, store)
	}
}

func runSweep(experimentStart time.Time, config experiment.Config, store *results.Store, osFs afero.Fs) {
	// Sweep ID tags metadata and published results.
	uid := uuid.New()
	experimentDirectory := logger.Initialize(appName, uid)

	// fio is killed together with the harness on SIGINT/SIGTERM.
	executor.RegisterInterruptHandle()

	meta, err := metadata.NewDefault(uid)
	errutil.CheckWithContext(err, "Cannot connect to metadata database")
	err = metadata.RecordRuntimeEnv(meta, experimentStart, config.Devices)
	errutil.CheckWithContext(err, "Cannot save runtime environment in metadata database")

	pub, err := publisher.NewDefault(uid)
	errutil.CheckWithContext(err, "Cannot connect to results database")
	defer pub.Close()

	local := executor.NewLocalWithConfig(executor.LocalConfig{WorkDir: experimentDirectory, Prefix: "fio"})
	sweep := experiment.NewSweep(config, local, store, osFs, pub)

	bar := progressbar.NewOptions(
		len(config.Parameters()),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("fio"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish(),
	)
	sweep.OnProgress(func(done, total int, parameters experiment.Parameters, _ results.RunResult) {
		bar.Describe(parameters.String())
		bar.Add(1)
	})

	err = sweep.Run()
	errutil.CheckWithContext(err, "fio sweep failed")
	bar.Finish()

	logrus.Infof("Sweep %s finished in %s, results stored in %q", uid, time.Since(experimentStart), store.Root())
	printSummary(config, store)
}

func printSummary(config experiment.Config, store *results.Store) {
	table, err := visualization.SummaryTable(store, config.Modes, config.Devices)
	errutil.CheckWithContext(err, "Cannot read fio results")
	visualization.DrawTable(os.Stdout, table)
}
