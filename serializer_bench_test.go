package hilbert

import "testing"

func BenchmarkSerializer_RoundTrip(b *testing.B) {
	route := testGeometries()[1]

	for _, compression := range allCompressions {
		s, err := NewSerializer(WithCompression(compression), WithChecksum(true))
		if err != nil {
			b.Fatal(err)
		}

		b.Run(compression.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				data, err := s.Encode(route)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := s.Decode(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncode_Default(b *testing.B) {
	square := unitSquare()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Encode(square)
	}
}
