package main

import (
	"github.com/alamminsalo/hilbert-geometry/internal/config"
)

// SerializerFlags override the serializer settings of the config file.
type SerializerFlags struct {
	Compression string `short:"z" long:"compression" env:"HGEOM_COMPRESSION" description:"Payload compression: none, zstd, s2 or lz4"`
	Precision   uint8  `short:"p" long:"precision"   env:"HGEOM_PRECISION"   description:"Quantization bits per axis, 1-32 (default 29)"`
	Checksum    bool   `long:"checksum"              env:"HGEOM_CHECKSUM"    description:"Add a checksum to every frame"`
}

func (f SerializerFlags) config(simplify float64) config.Config {
	return settings.Merge(config.Config{
		Compression: f.Compression,
		Simplify:    simplify,
		Precision:   f.Precision,
		Checksum:    f.Checksum,
	})
}
