// Package measure reports how a Serializer performs on concrete geometries: encoded
// size against WKB and against a fixed 16 bytes per point, and the largest positional
// error introduced by quantization.
package measure
