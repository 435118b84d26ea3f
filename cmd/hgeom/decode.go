package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"

	hilbert "github.com/alamminsalo/hilbert-geometry"
)

type DecodeCommand struct {
	Input  string `short:"i" long:"input"  default:"-" description:"Record input file, - for stdin"`
	Output string `short:"o" long:"output" default:"-" description:"GeoJSON output file, - for stdout"`
}

// Execute implements flags.Commander.
func (c *DecodeCommand) Execute(_ []string) error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}

	geoms, err := decodeRecords(data)
	if err != nil {
		return err
	}

	out, err := writeFeatures(geoms)
	if err != nil {
		return err
	}

	log.Info().
		Int("features", len(geoms)).
		Int("input_bytes", len(data)).
		Int("output_bytes", len(out)).
		Msg("Decoded")

	return writeOutput(c.Output, out)
}

// decodeRecords decodes every frame of a record file. Frames carry their own
// settings, so no serializer options are needed.
func decodeRecords(data []byte) ([]orb.Geometry, error) {
	frames, err := splitRecords(data)
	if err != nil {
		return nil, err
	}

	geoms := make([]orb.Geometry, len(frames))
	for i, frame := range frames {
		g, err := hilbert.Decode(frame)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		geoms[i] = g
	}

	return geoms, nil
}
