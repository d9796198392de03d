package chunk

import (
	"github.com/arloliu/numo/compress"
	"github.com/arloliu/numo/errs"
	"github.com/arloliu/numo/format"
	"github.com/arloliu/numo/internal/options"
	"github.com/arloliu/numo/mode"
	"github.com/arloliu/numo/section"
)

// encoderConfig holds the configuration shared by FloatEncoder and IntEncoder.
type encoderConfig struct {
	header     *section.ChunkHeader
	spec       ChunkSpec
	mode       mode.Mode[uint64]
	deltaOrder int
	codec      compress.Codec
}

// EncoderOption is a functional option for configuring chunk encoders.
type EncoderOption = options.Option[*encoderConfig]

// newEncoderConfig creates an encoder config with defaults: Classic mode,
// single-page spec, delta order 0, varint encoding, no compression,
// little-endian.
func newEncoderConfig(opts ...EncoderOption) (*encoderConfig, error) {
	cfg := &encoderConfig{
		header: section.NewChunkHeader(),
		mode:   mode.Classic[uint64](),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	cfg.codec = codec

	return cfg, nil
}

// WithChunkSpec sets the chunk's page partition spec.
// The spec is validated against the element count when Encode is called.
func WithChunkSpec(spec ChunkSpec) EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.spec = spec
	})
}

// WithMode sets the chunk's decomposition mode.
// The mode's parameter invariants are validated against the element type
// when Encode is called.
func WithMode(m mode.Mode[uint64]) EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.mode = m
	})
}

// WithDeltaOrder sets the delta-encoding order applied to latent stream 0.
// Latent stream 1, when the mode produces one, is never delta encoded
// regardless of this setting.
func WithDeltaOrder(order int) EncoderOption {
	return options.New(func(cfg *encoderConfig) error {
		if order < 0 || order > section.MaxDeltaOrder {
			return errs.InvalidArgumentf("delta order must be in [0, %d], got %d", section.MaxDeltaOrder, order)
		}
		cfg.deltaOrder = order
		cfg.header.DeltaOrder = uint8(order) //nolint:gosec // bounded above

		return nil
	})
}

// WithEncoding sets the byte-level encoding for latent stream payloads.
func WithEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(cfg *encoderConfig) error {
		switch enc {
		case format.TypeRaw, format.TypeVarint:
			cfg.header.Flag.SetEncoding(enc)
			return nil
		default:
			return errs.InvalidArgumentf("invalid latent encoding: %v", enc)
		}
	})
}

// WithCompression sets the compression applied to page payloads.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(cfg *encoderConfig) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.header.Flag.SetCompression(comp)
			return nil
		default:
			return errs.InvalidArgumentf("invalid page compression: %v", comp)
		}
	})
}

// WithLittleEndian sets little-endian byte order for raw payloads and the
// page table. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian sets big-endian byte order for raw payloads and the page table.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.header.Flag.WithBigEndian()
	})
}
