// Command hgeom encodes GeoJSON geometries into Hilbert-delta frames and back.
//
// Usage:
//
//	hgeom encode -i roads.geojson -o roads.hgeom --compression zstd
//	hgeom decode -i roads.hgeom -o roads.geojson
//	hgeom stats  -i roads.geojson --precision 24
//
// Encoded files hold one record per geometry: a varint length followed by the frame.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/alamminsalo/hilbert-geometry/internal/config"
	"github.com/alamminsalo/hilbert-geometry/internal/logger"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"HGEOM_CONFIG" description:"Path to YAML configuration file"`

	Encode EncodeCommand `command:"encode" description:"Encode a GeoJSON file into frames"`
	Decode DecodeCommand `command:"decode" description:"Decode frames into a GeoJSON feature collection"`
	Stats  StatsCommand  `command:"stats"  description:"Report encoded sizes and errors for a GeoJSON file"`
}

// settings is loaded from the config file before a command runs.
var settings config.Config

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		opts.Logger.Setup()

		if opts.ConfigFile != "" {
			cfg, err := config.Load(opts.ConfigFile)
			if err != nil {
				log.Error().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
				return err
			}
			settings = *cfg
		}

		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
