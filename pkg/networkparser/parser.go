// Package networkparser reads flight networks from yaml documents.
package networkparser

import (
	_ "embed"
	"errors"
	"io"

	"lintang/flightnav/domain"
	"lintang/flightnav/pkg/datastructure"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"
)

//go:embed data/india.yaml
var sampleNetwork []byte

// SampleNetwork returns the bundled network of seven Indian airports.
func SampleNetwork() []byte {
	return sampleNetwork
}

type AirportEntry struct {
	Code string  `yaml:"code"`
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

type RouteEntry struct {
	From                  string `yaml:"from"`
	To                    string `yaml:"to"`
	datastructure.Weights `yaml:",inline"`
}

type Document struct {
	Airports []AirportEntry `yaml:"airports"`
	Routes   []RouteEntry   `yaml:"routes"`
}

// Builder is the part of a flight network a Document is loaded into.
type Builder interface {
	AddAirport(code, name string, lat, lon float64) (int, error)
	AddRoute(srcCode, dstCode string, distance, duration, cost int64) error
}

func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrBadParamInput, "network document is not valid yaml")
	}
	return &doc, nil
}

type buildOptions struct {
	progress io.Writer
}

type BuildOption func(*buildOptions)

// WithProgress draws a progress bar on w while the document is loaded.
func WithProgress(w io.Writer) BuildOption {
	return func(o *buildOptions) {
		o.progress = w
	}
}

// Build adds every airport, then every route of the document to net. A failing
// entry does not stop the others; all failures are returned joined together.
func (d *Document) Build(net Builder, opts ...BuildOption) error {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	var bar *progressbar.ProgressBar
	if o.progress != nil {
		bar = progressbar.NewOptions(len(d.Airports)+len(d.Routes),
			progressbar.OptionSetWriter(o.progress),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription("[cyan][1/1][reset] loading flight network..."),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	var errs []error
	for _, a := range d.Airports {
		if _, err := net.AddAirport(a.Code, a.Name, a.Lat, a.Lon); err != nil {
			errs = append(errs, err)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	for _, r := range d.Routes {
		if err := net.AddRoute(r.From, r.To, r.Distance, r.Duration, r.Cost); err != nil {
			errs = append(errs, err)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return errors.Join(errs...)
}
