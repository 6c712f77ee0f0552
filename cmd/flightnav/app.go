package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"lintang/flightnav/domain"
	"lintang/flightnav/pkg/config"
	"lintang/flightnav/pkg/engine/routingalgorithm"
	"lintang/flightnav/pkg/flightnetwork"
	"lintang/flightnav/pkg/networkparser"

	"github.com/k0kubun/go-ansi"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// app is the state shared by every subcommand. It is populated by setup once
// the flags have been parsed.
type app struct {
	cfg      *config.Config
	progress bool

	log     *slog.Logger
	reg     *prometheus.Registry
	metrics *routingalgorithm.Metrics
	net     *flightnetwork.FlightNetwork
}

func newApp() *app {
	return &app{cfg: config.Default()}
}

func (a *app) setup(stderr io.Writer) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: a.cfg.Level()}))
	a.reg = prometheus.NewRegistry()
	a.metrics = routingalgorithm.NewMetrics(a.reg)
	a.net = flightnetwork.New(flightnetwork.WithCapacity(a.cfg.Capacity), flightnetwork.WithLogger(a.log))

	doc, err := networkparser.Parse(networkparser.SampleNetwork())
	if err != nil {
		return err
	}
	var opts []networkparser.BuildOption
	if a.progress {
		opts = append(opts, networkparser.WithProgress(progressWriter(stderr)))
	}
	if err := doc.Build(a.net, opts...); err != nil {
		// partial networks are usable, e.g. with a small --capacity
		a.log.Warn("flight network loaded with errors", "error", err)
	}
	a.log.Debug("flight network loaded", "airports", a.net.NumAirports(), "routes", a.net.NumRoutes())
	return nil
}

// progressWriter draws on the real terminal when stderr is one.
func progressWriter(stderr io.Writer) io.Writer {
	if f, ok := stderr.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return ansi.NewAnsiStderr()
	}
	return stderr
}

func (a *app) router() (*routingalgorithm.RouteAlgorithm, error) {
	criterion, err := routingalgorithm.ParseCriterion(a.cfg.Criterion)
	if err != nil {
		return nil, err
	}
	return routingalgorithm.NewRouteAlgorithm(a.net,
		routingalgorithm.WithCriterion(criterion),
		routingalgorithm.WithMetrics(a.metrics),
		routingalgorithm.WithLogger(a.log),
	), nil
}

func (a *app) airportIndex(code string) (int, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	idx, ok := a.net.FindAirportIndex(code)
	if !ok {
		return -1, domain.WrapErrorf(nil, domain.ErrNotFound, "airport %q is not in the network", code)
	}
	return idx, nil
}

func (a *app) airportIndices(codes []string) ([]int, error) {
	indices := make([]int, 0, len(codes))
	for _, code := range codes {
		idx, err := a.airportIndex(code)
		if err != nil {
			return nil, err
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// writeMetrics prints every collected metric family in the prometheus text
// format.
func (a *app) writeMetrics(w io.Writer) error {
	mfs, err := a.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
