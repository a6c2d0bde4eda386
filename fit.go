// Package fit provides a streaming decoder for the FIT (Flexible and
// Interoperable Data Transfer) binary fitness-file format.
//
// # Basic Usage
//
// Decoding a .FIT file, delivering each message to a callback sink:
//
//	f, err := os.Open("activity.fit")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	hdr, err := fit.Decode(f, fit.SinkFunc(func(msg types.DecodedMessage, _ any) error {
//	    fmt.Printf("global=%d fields=%d\n", msg.GlobalMessageNumber, len(msg.Fields))
//	    return nil
//	}), nil)
//
// .fit.gz/.fit.zst/.fit.lz4 inputs are transparently unwrapped; pass
// fit.WithoutContainerDetection() if the input is already decompressed.
//
// # Package Structure
//
// This package is a thin convenience wrapper around decode.Decode. For
// decoder diagnostics (e.g. RedefinitionCount) or finer control over
// decoding, construct a decode.Decoder directly via decode.New.
package fit

import (
	"io"

	"github.com/fitkit/fit/decode"
	"github.com/fitkit/fit/header"
	"github.com/fitkit/fit/sink"
)

// Sink receives each decoded message as the stream is read.
type Sink = sink.Sink

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc = sink.Func

// Header is a decoded FIT file header.
type Header = header.Header

// Option configures a decode.
type Option = decode.Option

// WithStrictMode treats the reserved bit of a normal record header as a
// malformed-stream error instead of silently ignoring it.
func WithStrictMode() Option { return decode.WithStrictMode() }

// WithMaxMessageSize caps a single record's payload size in bytes.
func WithMaxMessageSize(n int) Option { return decode.WithMaxMessageSize(n) }

// WithoutContainerDetection skips the gzip/zstd/lz4 container sniff,
// treating the input as a bare FIT stream.
func WithoutContainerDetection() Option { return decode.WithoutContainerDetection() }

// Decode reads a FIT stream from r, delivering each decoded message to snk.
// ctx is passed through to every Sink.Deliver call unexamined. r is first
// passed through container detection unless WithoutContainerDetection is
// given, so gzip/zstd/lz4-wrapped exports can be fed in directly.
func Decode(r io.Reader, snk Sink, ctx any, opts ...Option) (*Header, error) {
	return decode.Decode(r, snk, ctx, opts...)
}
