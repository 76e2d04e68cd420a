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

// Package visualization renders stored sweep results as charts and tables.
package visualization

import (
	"fmt"
	"path"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/jarulraj/fio/pkg/device"
	"github.com/jarulraj/fio/pkg/results"
)

const (
	// DefaultFormat is file format of rendered charts.
	DefaultFormat = "pdf"
	// LegendName is base name of the standalone legend.
	LegendName = "legend"

	chartWidth  = 400 * vg.Millimeter / 2
	chartHeight = 150 * vg.Millimeter / 2

	// IOPS charts use fixed range of the reference setup.
	iopsMin = 1e1
	iopsMax = 1e6
)

var metricLabels = map[results.Metric]string{
	results.Bandwidth: "Bandwidth (bytes/s)",
	results.IOPS:      "IOPS",
}

// Renderer draws one line chart per mode: block size on X axis, metric on Y axis
// and a line per device.
type Renderer struct {
	store  *results.Store
	fs     afero.Fs
	dir    string
	format string
}

// NewRenderer returns Renderer reading from store and writing charts into dir on fs.
func NewRenderer(store *results.Store, fs afero.Fs, dir string) *Renderer {
	return &Renderer{store: store, fs: fs, dir: dir, format: DefaultFormat}
}

// SetFormat changes file format of charts, e.g. "png" or "svg".
func (r *Renderer) SetFormat(format string) {
	r.format = format
}

// ChartPath returns file the chart of mode and metric is saved to.
// IOPS charts are named after the mode only.
func (r *Renderer) ChartPath(mode string, metric results.Metric) string {
	name := mode
	if metric != results.IOPS {
		name = fmt.Sprintf("%s_%s", mode, metric)
	}
	return path.Join(r.dir, fmt.Sprintf("%s.%s", name, r.format))
}

// RenderAll renders IOPS and bandwidth charts of every mode and the legend.
func (r *Renderer) RenderAll(modes []string, devices []device.Device) error {
	for _, mode := range modes {
		for _, metric := range []results.Metric{results.IOPS, results.Bandwidth} {
			if err := r.Render(mode, metric, devices); err != nil {
				return err
			}
		}
	}
	return r.RenderLegend(devices)
}

// Render draws chart of a single mode and metric.
func (r *Renderer) Render(mode string, metric results.Metric, devices []device.Device) error {
	p := plot.New()
	p.Title.Text = mode
	p.X.Label.Text = "Block size"
	p.Y.Label.Text = metricLabels[metric]
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	blockSizes := map[int]bool{}
	for i, dev := range devices {
		records, err := r.store.Load(results.Key{Mode: mode, Device: dev.Kind, Metric: metric})
		if err != nil {
			return errors.Wrapf(err, "cannot render %s chart of %s", metric, mode)
		}

		points := positivePoints(records)
		if len(points) == 0 {
			log.Warnf("No positive %s values of %s on %s, skipping line", metric, mode, dev.Kind)
			continue
		}
		for _, record := range records {
			blockSizes[record.BlockSize] = true
		}

		line, scatter, err := plotter.NewLinePoints(points)
		if err != nil {
			return errors.Wrapf(err, "cannot draw %s line", dev.Kind)
		}
		line.Color = plotutil.Color(i)
		scatter.Color = plotutil.Color(i)
		scatter.Shape = plotutil.Shape(i)
		p.Add(line, scatter)
		p.Legend.Add(dev.Kind.String(), line, scatter)
	}

	p.X.Tick.Marker = blockSizeTicks(blockSizes)
	fixRange(&p.Y, metric)
	if p.X.Min <= 0 || p.X.Min > p.X.Max {
		p.X.Min, p.X.Max = 1, 2
	}

	return r.save(p, r.ChartPath(mode, metric), chartWidth, chartHeight)
}

// RenderLegend draws standalone legend naming every device.
func (r *Renderer) RenderLegend(devices []device.Device) error {
	p := plot.New()
	p.HideAxes()
	p.Legend.Top = true
	p.Legend.Left = true
	for i, dev := range devices {
		line, scatter, err := plotter.NewLinePoints(plotter.XYs{{X: 1, Y: 1}})
		if err != nil {
			return errors.Wrap(err, "cannot draw legend")
		}
		line.Color = plotutil.Color(i)
		scatter.Color = plotutil.Color(i)
		scatter.Shape = plotutil.Shape(i)
		p.Legend.Add(dev.Kind.String(), line, scatter)
	}
	return r.save(p, path.Join(r.dir, fmt.Sprintf("%s.%s", LegendName, r.format)), 90*vg.Millimeter, 15*vg.Millimeter)
}

func (r *Renderer) save(p *plot.Plot, filePath string, width, height vg.Length) error {
	writerTo, err := p.WriterTo(width, height, r.format)
	if err != nil {
		return errors.Wrapf(err, "cannot render %q", filePath)
	}

	if err := r.fs.MkdirAll(r.dir, 0755); err != nil {
		return errors.Wrapf(err, "cannot create charts directory %q", r.dir)
	}
	file, err := r.fs.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "cannot create %q", filePath)
	}
	if _, err := writerTo.WriteTo(file); err != nil {
		file.Close()
		return errors.Wrapf(err, "cannot write %q", filePath)
	}
	log.Infof("Chart saved to %q", filePath)
	return errors.Wrapf(file.Close(), "cannot close %q", filePath)
}

// positivePoints drops values which cannot be shown on log axis (e.g. unparsed ones stored as 0).
func positivePoints(records []results.Record) plotter.XYs {
	points := plotter.XYs{}
	for _, record := range records {
		if record.BlockSize <= 0 || record.Value <= 0 {
			continue
		}
		points = append(points, plotter.XY{X: float64(record.BlockSize), Y: record.Value})
	}
	return points
}

func blockSizeTicks(blockSizes map[int]bool) plot.ConstantTicks {
	ticks := plot.ConstantTicks{}
	for blockSize := range blockSizes {
		ticks = append(ticks, plot.Tick{Value: float64(blockSize), Label: humanize.IBytes(uint64(blockSize))})
	}
	return ticks
}

func fixRange(axis *plot.Axis, metric results.Metric) {
	if metric == results.IOPS {
		axis.Min, axis.Max = iopsMin, iopsMax
		return
	}
	if axis.Min <= 0 || axis.Min > axis.Max {
		axis.Min, axis.Max = 1, 10
	}
	if axis.Min == axis.Max {
		axis.Max = axis.Min * 10
	}
}
