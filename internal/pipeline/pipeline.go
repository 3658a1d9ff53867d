// Package pipeline wires the trace comparison stages together: load both
// traces, diff them, average per timestep, describe, report, and finally show
// the plot. Any stage error stops the run before later stages produce output.
package pipeline

import (
	"NetSyncDiff/internal/config"
	"NetSyncDiff/internal/engine/aggregator"
	"NetSyncDiff/internal/engine/differ"
	"NetSyncDiff/internal/engine/statistic"
	"NetSyncDiff/internal/model"
	"NetSyncDiff/internal/notification"
	"NetSyncDiff/internal/report"
	"NetSyncDiff/internal/viewer"
	"NetSyncDiff/pkg/tracelog"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
)

// Fixed input locations, relative to the working directory.
const (
	HostLog   = "log_host.txt"
	ClientLog = "log_client.txt"
)

// Result holds everything computed from one host/client pair.
type Result struct {
	Alignment differ.Alignment
	Averages  model.AverageSeries
	Overall   float64
	Summary   model.Summary
}

// Analyze runs the pure part of the pipeline over two parsed traces.
func Analyze(host, client model.Trace) (*Result, error) {
	distances := differ.Diff(host, client)

	averages, err := aggregator.Average(distances)
	if err != nil {
		return nil, fmt.Errorf("failed to average distances: %w", err)
	}
	overall, err := aggregator.Overall(averages)
	if err != nil {
		return nil, fmt.Errorf("failed to average timesteps: %w", err)
	}

	summary, err := statistic.Describe(averages)
	if err != nil {
		return nil, fmt.Errorf("failed to describe averages: %w", err)
	}
	summary.Overall = overall

	return &Result{
		Alignment: differ.Align(host, client),
		Averages:  averages,
		Overall:   overall,
		Summary:   summary,
	}, nil
}

// Pipeline runs a full comparison as described by its config.
type Pipeline struct {
	cfg    *config.Config
	out    io.Writer
	writer model.Writer

	hostLog   string
	clientLog string

	// newNotifier and show are replaced in tests.
	newNotifier func(config.NotifyConfig) (model.Notifier, error)
	show        func(context.Context, model.AverageSeries, config.ViewerConfig) error
}

// New creates a pipeline that writes its report to out.
func New(cfg *config.Config, out io.Writer) (*Pipeline, error) {
	writer, err := report.NewWriter(cfg.Report.Format)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:         cfg,
		out:         out,
		writer:      writer,
		hostLog:     HostLog,
		clientLog:   ClientLog,
		newNotifier: notification.NewNATSNotifier,
		show:        viewer.Show,
	}, nil
}

// Run loads both traces, reports the statistics, and shows the plot. It
// blocks until the plot viewer is dismissed.
func (p *Pipeline) Run(ctx context.Context) error {
	host, err := tracelog.Load(p.hostLog)
	if err != nil {
		return fmt.Errorf("failed to load host trace: %w", err)
	}
	log.Printf("Loaded host trace '%s': %d timesteps, %d points", p.hostLog, len(host), host.Points())

	client, err := tracelog.Load(p.clientLog)
	if err != nil {
		return fmt.Errorf("failed to load client trace: %w", err)
	}
	log.Printf("Loaded client trace '%s': %d timesteps, %d points", p.clientLog, len(client), client.Points())

	result, err := Analyze(host, client)
	if err != nil {
		return err
	}
	if a := result.Alignment; a.Truncated() {
		log.Printf("Warning: traces do not line up; compared %d timesteps, ignored %d host / %d client trailing timesteps and %d host / %d client points",
			a.Timesteps, a.DroppedHostBlocks, a.DroppedClientBlocks, a.DroppedHostPoints, a.DroppedClientPoints)
	}

	if err := p.writer.Write(p.out, result.Summary); err != nil {
		return fmt.Errorf("failed to write %s report: %w", p.writer.Name(), err)
	}

	if p.cfg.Notify.NATSURL != "" {
		if err := p.notify(result.Summary); err != nil {
			return err
		}
	}

	if !p.cfg.Viewer.Enabled {
		return nil
	}
	if err := p.show(ctx, result.Averages, p.cfg.Viewer); err != nil {
		return fmt.Errorf("failed to show plot: %w", err)
	}
	return nil
}

func (p *Pipeline) notify(summary model.Summary) error {
	var body bytes.Buffer
	if err := (&report.JSONWriter{}).Write(&body, summary); err != nil {
		return err
	}

	notifier, err := p.newNotifier(p.cfg.Notify)
	if err != nil {
		return fmt.Errorf("failed to create notifier: %w", err)
	}
	defer notifier.Close()

	if err := notifier.Send(p.cfg.Notify.Subject, body.Bytes()); err != nil {
		return fmt.Errorf("failed to send summary: %w", err)
	}
	log.Printf("Summary published to '%s'", p.cfg.Notify.Subject)
	return nil
}
