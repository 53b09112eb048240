package binhex

import (
	"errors"
	"fmt"
	"time"

	"github.com/marmos91/binhex/internal/logger"
)

// Options configures a Codec.
type Options struct {
	// DefaultName replaces Config.Name when it is nil. Empty selects DefaultName.
	DefaultName string

	// Verify makes Codec.Decode check all CRCs before returning.
	Verify bool

	// MaxInputSize bounds the encoded text accepted by Decode and the combined
	// fork size accepted by Encode. Zero means unlimited.
	MaxInputSize int64

	// Metrics receives per-call observations. nil disables collection.
	Metrics Metrics
}

// Codec encodes and decodes BinHex 4.0 containers with a fixed set of
// options. A Codec is immutable and safe for concurrent use.
type Codec struct {
	defaultName  []byte
	verify       bool
	maxInputSize int64
	metrics      Metrics
}

// NewCodec creates a Codec from opts.
func NewCodec(opts Options) *Codec {
	name := opts.DefaultName
	if name == "" {
		name = DefaultName
	}
	return &Codec{
		defaultName:  []byte(name),
		verify:       opts.Verify,
		maxInputSize: opts.MaxInputSize,
		metrics:      opts.Metrics,
	}
}

var defaultCodec = NewCodec(Options{})

// Encode assembles a container from cfg using the default options.
func Encode(cfg Config) (*Container, error) {
	return defaultCodec.Encode(cfg)
}

// Decode locates the BinHex payload in input, decodes it into a container
// and, when verify is set, checks every CRC.
func Decode(input []byte, verify bool) (*Container, error) {
	return defaultCodec.decode(input, verify)
}

// Encode assembles a container from cfg. The result's Printable method
// produces the BinHex text.
func (c *Codec) Encode(cfg Config) (*Container, error) {
	start := time.Now()
	ctr, err := c.encode(cfg)

	if c.metrics != nil {
		size := 0
		if ctr != nil {
			size = len(ctr.raw)
		}
		c.metrics.ObserveEncode(size, time.Since(start), err)
	}

	if err != nil {
		logger.Debug("binhex encode failed", logger.Err(err))
		return nil, err
	}

	logger.Debug("binhex container encoded",
		logger.Name(ctr.Name),
		logger.DataLength(ctr.DataLength),
		logger.ResourceLength(ctr.ResourceLength),
		logger.DurationMs(logger.Duration(start)))
	return ctr, nil
}

func (c *Codec) encode(cfg Config) (*Container, error) {
	if c.maxInputSize > 0 {
		if size := int64(len(cfg.Data)) + int64(len(cfg.Resource)); size > c.maxInputSize {
			return nil, fmt.Errorf("%w: forks total %d bytes (max %d)", ErrInputTooLarge, size, c.maxInputSize)
		}
	}

	raw, err := assemble(cfg, c.defaultName)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Decode decodes the BinHex text in input, verifying CRCs when the codec
// was created with Options.Verify.
func (c *Codec) Decode(input []byte) (*Container, error) {
	return c.decode(input, c.verify)
}

func (c *Codec) decode(input []byte, verify bool) (*Container, error) {
	start := time.Now()
	ctr, err := c.decodeContainer(input, verify)

	if c.metrics != nil {
		c.metrics.ObserveDecode(len(input), time.Since(start), err)
	}

	if err != nil {
		var crcErr *CRCError
		if errors.As(err, &crcErr) {
			if c.metrics != nil {
				c.metrics.ObserveCRCFailure(crcErr.Section)
			}
			logger.Warn("binhex crc verification failed",
				logger.Section(crcErr.Section.String()),
				logger.StoredCRC(crcErr.Stored),
				logger.ComputedCRC(crcErr.Computed))
		} else {
			logger.Debug("binhex decode failed", logger.InputBytes(len(input)), logger.Err(err))
		}
		return nil, err
	}

	logger.Debug("binhex container decoded",
		logger.Name(ctr.Name),
		logger.DataLength(ctr.DataLength),
		logger.ResourceLength(ctr.ResourceLength),
		logger.Verified(verify),
		logger.DurationMs(logger.Duration(start)))
	return ctr, nil
}

func (c *Codec) decodeContainer(input []byte, verify bool) (*Container, error) {
	if c.maxInputSize > 0 && int64(len(input)) > c.maxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(input), c.maxInputSize)
	}

	payload, err := LocatePayload(input)
	if err != nil {
		return nil, err
	}
	raw, err := unpack(payload)
	if err != nil {
		return nil, err
	}
	ctr, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if verify {
		if err := Verify(ctr); err != nil {
			return nil, err
		}
	}
	return ctr, nil
}
