package scene

// DecodeOption configures Decode, Unmarshal and Load.
//
// Example:
//
//	info, err := scene.Load("level.scene", scene.WithStrict())
type DecodeOption func(*decodeOptions)

// decodeOptions holds optional configuration for decoding.
type decodeOptions struct {
	strict bool
}

// WithStrict rejects documents containing keys that Info does not define.
// By default unknown keys are ignored so newer files still load.
func WithStrict() DecodeOption {
	return func(o *decodeOptions) {
		o.strict = true
	}
}
