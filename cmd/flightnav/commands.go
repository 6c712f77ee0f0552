package main

import (
	"fmt"
	"io"
	"strconv"

	"lintang/flightnav/domain"
	"lintang/flightnav/pkg/guidance"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := newApp()

	rootCmd := &cobra.Command{
		Use:   "flightnav",
		Short: "Shortest routes on a flight network",
		Long: `flightnav answers shortest route queries on a small flight network. Routes are
minimized on distance by default, duration and cost are carried along.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Metrics {
				return nil
			}
			return a.writeMetrics(cmd.OutOrStdout())
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&a.cfg.Capacity, "capacity", a.cfg.Capacity, "maximum number of airports in the network")
	flags.StringVar(&a.cfg.Criterion, "criterion", a.cfg.Criterion, "value to minimize: distance, duration or cost")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn or error")
	flags.BoolVar(&a.cfg.Metrics, "metrics", false, "print the collected metrics after the command")
	flags.BoolVar(&a.progress, "progress", false, "show a progress bar while the network is loaded")

	rootCmd.AddCommand(
		newRouteCmd(a),
		newMatrixCmd(a),
		newNearestCmd(a),
		newAirportsCmd(a),
	)
	return rootCmd
}

func newRouteCmd(a *app) *cobra.Command {
	var from, to string
	var legs bool

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the optimal route between two airports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.airportIndex(from)
			if err != nil {
				return err
			}
			dst, err := a.airportIndex(to)
			if err != nil {
				return err
			}
			rt, err := a.router()
			if err != nil {
				return err
			}

			res := rt.ShortestPath(src, dst)
			it, err := guidance.NewItinerary(a.net, res)
			if err != nil {
				return err
			}
			if err := it.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			if !it.Found {
				return domain.WrapErrorf(nil, domain.ErrNoPathExists, "%s is unreachable from %s", it.To.Code, it.From.Code)
			}
			if legs {
				return it.RenderLegs(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "code of the departure airport")
	cmd.Flags().StringVar(&to, "to", "", "code of the arrival airport")
	cmd.Flags().BoolVar(&legs, "legs", false, "also print every leg of the route")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newMatrixCmd(a *app) *cobra.Command {
	var from, to []string

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Compute the optimal routes between every pair of airports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.airportIndices(from)
			if err != nil {
				return err
			}
			dst, err := a.airportIndices(to)
			if err != nil {
				return err
			}
			rt, err := a.router()
			if err != nil {
				return err
			}

			spMap := rt.ManyToMany(src, dst, a.cfg.Workers)

			headers := []string{rt.Criterion().String()}
			for _, d := range dst {
				headers = append(headers, a.net.Airport(d).Code)
			}
			rows := make([][]string, 0, len(src))
			for _, s := range src {
				row := []string{a.net.Airport(s).Code}
				for _, d := range dst {
					res := spMap[s][d]
					if !res.Reached {
						row = append(row, "-")
						continue
					}
					row = append(row, strconv.FormatInt(rt.Criterion().Value(res.Total()), 10))
				}
				rows = append(rows, row)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows))
			return err
		},
	}
	cmd.Flags().StringSliceVar(&from, "from", nil, "comma separated departure airport codes")
	cmd.Flags().StringSliceVar(&to, "to", nil, "comma separated arrival airport codes")
	cmd.Flags().IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "number of concurrent queries")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newNearestCmd(a *app) *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Find the airport closest to a coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := a.net.NearestAirport(lat, lon)
			if err != nil {
				return err
			}
			airport := a.net.Airport(idx)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Nearest airport: %s (%s)\n", airport.Code, airport.Name)
			return err
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in degrees")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}

func newAirportsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "airports",
		Short: "List the airports of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, a.net.NumAirports())
			for i, airport := range a.net.Airports() {
				rows = append(rows, []string{
					strconv.Itoa(i),
					airport.Code,
					airport.Name,
					strconv.FormatFloat(airport.Lat, 'f', 4, 64),
					strconv.FormatFloat(airport.Lon, 'f', 4, 64),
				})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(),
				renderTable([]string{"#", "code", "name", "lat", "lon"}, rows))
			return err
		},
	}
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
