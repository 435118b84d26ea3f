package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
	"github.com/rs/zerolog/log"

	hilbert "github.com/alamminsalo/hilbert-geometry"
)

type EncodeCommand struct {
	Serializer SerializerFlags `group:"Serializer options"`

	Input    string  `short:"i" long:"input"    default:"-" description:"GeoJSON input file, - for stdin"`
	Output   string  `short:"o" long:"output"   default:"-" description:"Record output file, - for stdout"`
	Simplify float64 `short:"s" long:"simplify" env:"HGEOM_SIMPLIFY" description:"Douglas-Peucker tolerance in degrees applied before encoding"`
}

// Execute implements flags.Commander.
func (c *EncodeCommand) Execute(_ []string) error {
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

	out, err := encodeFeatures(s, features, cfg.Simplify)
	if err != nil {
		return err
	}

	log.Info().
		Int("features", len(features)).
		Int("input_bytes", len(data)).
		Int("output_bytes", len(out)).
		Uint8("precision", s.Precision()).
		Stringer("compression", s.Compression()).
		Msg("Encoded")

	return writeOutput(c.Output, out)
}

func encodeFeatures(s *hilbert.Serializer, features []*geojson.Feature, tolerance float64) ([]byte, error) {
	var out []byte

	for i, f := range features {
		g := simplifyGeometry(f.Geometry, tolerance)

		frame, err := s.Encode(g)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}

		log.Debug().
			Int("feature", i).
			Str("type", g.GeoJSONType()).
			Int("bytes", len(frame)).
			Msg("Encoded feature")

		out = appendRecord(out, frame)
	}

	return out, nil
}

// simplifyGeometry returns a Douglas-Peucker simplified copy of g, or g itself when
// tolerance is not positive.
func simplifyGeometry(g orb.Geometry, tolerance float64) orb.Geometry {
	if tolerance <= 0 {
		return g
	}

	return simplify.DouglasPeucker(tolerance).Simplify(orb.Clone(g))
}
