package scene

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gmath"
)

// LightmapInfo holds the three textures baked for one lightmap atlas.
type LightmapInfo struct {
	Lightmap0 GUID `yaml:"Lightmap0"`
	Lightmap1 GUID `yaml:"Lightmap1"`
	Lightmap2 GUID `yaml:"Lightmap2"`
}

// AtlasSize is the edge length in pixels of a square lightmap atlas.
// Only the sizes listed as constants are valid.
type AtlasSize int

// Supported atlas sizes.
const (
	AtlasSize32   AtlasSize = 32
	AtlasSize64   AtlasSize = 64
	AtlasSize128  AtlasSize = 128
	AtlasSize256  AtlasSize = 256
	AtlasSize512  AtlasSize = 512
	AtlasSize1024 AtlasSize = 1024
	AtlasSize2048 AtlasSize = 2048
	AtlasSize4096 AtlasSize = 4096
)

// DefaultAtlasSize is used when a stored size is not supported.
const DefaultAtlasSize = AtlasSize1024

var atlasSizes = [...]AtlasSize{
	AtlasSize32,
	AtlasSize64,
	AtlasSize128,
	AtlasSize256,
	AtlasSize512,
	AtlasSize1024,
	AtlasSize2048,
	AtlasSize4096,
}

// AtlasSizes returns the supported sizes in ascending order.
func AtlasSizes() []AtlasSize {
	return append([]AtlasSize(nil), atlasSizes[:]...)
}

// AtlasSizeFor returns the atlas size of px pixels, or DefaultAtlasSize if
// px is not a supported size.
func AtlasSizeFor(px int) AtlasSize {
	for _, s := range atlasSizes {
		if int(s) == px {
			return s
		}
	}
	return DefaultAtlasSize
}

// Valid reports whether s is one of the supported sizes.
func (s AtlasSize) Valid() bool {
	return AtlasSizeFor(int(s)) == s
}

func (s AtlasSize) String() string {
	return strconv.Itoa(int(s))
}

// UnmarshalYAML implements yaml.Unmarshaler. Unsupported sizes fall back
// to DefaultAtlasSize with a warning.
func (s *AtlasSize) UnmarshalYAML(value *yaml.Node) error {
	var px int
	if err := value.Decode(&px); err != nil {
		return fmt.Errorf("scene: atlas size: %w", err)
	}
	*s = AtlasSizeFor(px)
	if int(*s) != px {
		gmath.Logger().Warn("scene: unsupported lightmap atlas size",
			"size", px, "using", int(*s))
	}
	return nil
}

// Quality is the lightmap baking quality preset.
type Quality int

// Quality presets.
const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
	QualityUltra
)

var qualityNames = [...]string{"Low", "Medium", "High", "Ultra"}

func (q Quality) String() string {
	if q >= 0 && int(q) < len(qualityNames) {
		return qualityNames[q]
	}
	return "Quality(" + strconv.Itoa(int(q)) + ")"
}

// MarshalYAML implements yaml.Marshaler.
func (q Quality) MarshalYAML() (any, error) {
	if q < 0 || int(q) >= len(qualityNames) {
		return nil, fmt.Errorf("scene: invalid quality %d", int(q))
	}
	return q.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Both the preset name
// (case-insensitive) and its integer value are accepted.
func (q *Quality) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!int" {
		var n int
		if err := value.Decode(&n); err != nil {
			return fmt.Errorf("scene: quality: %w", err)
		}
		if n < 0 || n >= len(qualityNames) {
			return fmt.Errorf("scene: line %d: quality %d out of range", value.Line, n)
		}
		*q = Quality(n)
		return nil
	}
	for i, name := range qualityNames {
		if strings.EqualFold(value.Value, name) {
			*q = Quality(i)
			return nil
		}
	}
	return fmt.Errorf("scene: line %d: unknown quality %q", value.Line, value.Value)
}

// LightmapSettings are the parameters used to bake a scene's lightmaps.
type LightmapSettings struct {
	// IndirectLightingIntensity scales bounced light.
	IndirectLightingIntensity float32 `yaml:"IndirectLightingIntensity"`
	// GlobalObjectsScale scales every object's lightmap texel density.
	GlobalObjectsScale float32 `yaml:"GlobalObjectsScale"`
	// ChartsPadding is the gap in texels between UV charts in an atlas.
	ChartsPadding int       `yaml:"ChartsPadding"`
	AtlasSize     AtlasSize `yaml:"AtlasSize"`
	BounceCount   int       `yaml:"BounceCount"`

	CompressLightmaps          bool    `yaml:"CompressLightmaps"`
	UseGeometryWithNoMaterials bool    `yaml:"UseGeometryWithNoMaterials"`
	Quality                    Quality `yaml:"Quality"`
}

// DefaultLightmapSettings returns the settings a scene without stored
// settings uses.
func DefaultLightmapSettings() LightmapSettings {
	return LightmapSettings{
		IndirectLightingIntensity:  1,
		GlobalObjectsScale:         1,
		ChartsPadding:              3,
		AtlasSize:                  DefaultAtlasSize,
		BounceCount:                1,
		CompressLightmaps:          true,
		UseGeometryWithNoMaterials: true,
		Quality:                    QualityHigh,
	}
}
