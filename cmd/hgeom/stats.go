package main

import (
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"

	hilbert "github.com/alamminsalo/hilbert-geometry"
	"github.com/alamminsalo/hilbert-geometry/measure"
)

type StatsCommand struct {
	Serializer SerializerFlags `group:"Serializer options"`

	Input    string  `short:"i" long:"input"    default:"-" description:"GeoJSON input file, - for stdin"`
	Simplify float64 `short:"s" long:"simplify" env:"HGEOM_SIMPLIFY" description:"Douglas-Peucker tolerance in degrees applied before measuring"`
}

// Execute implements flags.Commander.
func (c *StatsCommand) Execute(_ []string) error {
	cfg := c.Serializer.config(c.Simplify)

	s, err := cfg.Serializer()
	if err != nil {
		return err
	}

	data, err := readInput(c.Input)
	if err != nil {
		return err
	}

	features, err := readFeatures(data)
	if err != nil {
		return err
	}

	summary, err := measureFeatures(s, features, cfg.Simplify)
	if err != nil {
		return err
	}

	return printSummary(os.Stdout, s, summary)
}

// measureFeatures reports each feature as the encode command would write it, so
// sizes and errors are taken after simplification.
func measureFeatures(s *hilbert.Serializer, features []*geojson.Feature, tolerance float64) (measure.Summary, error) {
	reports := make([]measure.Report, 0, len(features))
	for i, f := range features {
		r, err := measure.Compare(s, simplifyGeometry(f.Geometry, tolerance))
		if err != nil {
			return measure.Summary{}, fmt.Errorf("feature %d: %w", i, err)
		}

		log.Debug().
			Int("feature", i).
			Str("type", r.Type).
			Int("points", r.Points).
			Int("bytes", r.EncodedSize).
			Int("wkb_bytes", r.WKBSize).
			Float64("max_error_m", r.MaxErrorM).
			Msg("Measured feature")

		reports = append(reports, r)
	}

	return measure.Summarize(reports), nil
}

func printSummary(w io.Writer, s *hilbert.Serializer, sum measure.Summary) error {
	_, err := fmt.Fprintf(w,
		"precision:        %d bits, %s compression, checksum %t\n"+
			"geometries:       %d\n"+
			"points:           %d\n"+
			"encoded bytes:    %d\n"+
			"wkb bytes:        %d (ratio %.3f)\n"+
			"fixed bytes:      %d (ratio %.3f)\n"+
			"bytes per point:  min %.2f, median %.2f, mean %.2f, max %.2f\n"+
			"max error:        %.4f m\n",
		s.Precision(), s.Compression(), s.HasChecksum(),
		sum.Geometries,
		sum.Points,
		sum.EncodedSize,
		sum.WKBSize, sum.RatioToWKB(),
		sum.FixedSize, sum.RatioToFixed(),
		sum.BytesPerPoint.Min, sum.BytesPerPoint.Median, sum.BytesPerPoint.Mean, sum.BytesPerPoint.Max,
		sum.MaxErrorM,
	)

	return err
}
