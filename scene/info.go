package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gmath"
)

// Info is the metadata stored alongside a scene.
type Info struct {
	Title       string `yaml:"Title"`
	Description string `yaml:"Description"`
	Copyright   string `yaml:"Copyright"`

	// Lightmaps lists the baked atlases in bake order. It is omitted from
	// the document when empty.
	Lightmaps []LightmapInfo `yaml:"Lightmaps,omitempty"`

	LightmapSettings LightmapSettings `yaml:"LightmapSettings"`
}

// NewInfo returns an Info with default lightmap settings.
func NewInfo() Info {
	return Info{LightmapSettings: DefaultLightmapSettings()}
}

func (Info) String() string {
	return "SceneInfo"
}

// normalized returns a copy of info with its text fields in Unicode NFC,
// so titles typed on different platforms compare equal.
func (info Info) normalized() Info {
	info.Title = norm.NFC.String(info.Title)
	info.Description = norm.NFC.String(info.Description)
	info.Copyright = norm.NFC.String(info.Copyright)
	return info
}

// Decode reads one Info document from r.
//
// Missing strings decode as empty, a missing or empty Lightmaps list as
// nil (a Lightmaps value that is not a list is ignored with a warning), and
// a missing LightmapSettings (or any missing member of it) takes the value
// from DefaultLightmapSettings. An empty document yields NewInfo().
func Decode(r io.Reader, opts ...DecodeOption) (Info, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(o.strict)

	doc := infoDocument{LightmapSettings: DefaultLightmapSettings()}
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewInfo(), nil
		}
		return Info{}, fmt.Errorf("scene: decode info: %w", err)
	}

	info := Info{
		Title:            doc.Title,
		Description:      doc.Description,
		Copyright:        doc.Copyright,
		LightmapSettings: doc.LightmapSettings,
	}
	lightmaps, err := decodeLightmaps(&doc.Lightmaps, o.strict)
	if err != nil {
		return Info{}, fmt.Errorf("scene: decode info: %w", err)
	}
	info.Lightmaps = lightmaps
	return info.normalized(), nil
}

// infoDocument is the decoded shape of Info with Lightmaps left as a raw
// node, so a Lightmaps value that is not a list can be skipped.
type infoDocument struct {
	Title            string           `yaml:"Title"`
	Description      string           `yaml:"Description"`
	Copyright        string           `yaml:"Copyright"`
	Lightmaps        yaml.Node        `yaml:"Lightmaps"`
	LightmapSettings LightmapSettings `yaml:"LightmapSettings"`
}

var lightmapKeys = map[string]bool{"Lightmap0": true, "Lightmap1": true, "Lightmap2": true}

// decodeLightmaps decodes a Lightmaps list. Anything other than a list is
// ignored. In strict mode entries may only carry the Lightmap0..2 keys.
func decodeLightmaps(node *yaml.Node, strict bool) ([]LightmapInfo, error) {
	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		if node.Kind != 0 && node.Kind != yaml.SequenceNode && node.ShortTag() != "!!null" {
			gmath.Logger().Warn("scene: ignoring Lightmaps that is not a list",
				"line", node.Line, "tag", node.ShortTag())
		}
		return nil, nil
	}

	lightmaps := make([]LightmapInfo, 0, len(node.Content))
	for _, item := range node.Content {
		if strict && item.Kind == yaml.MappingNode {
			for i := 0; i < len(item.Content); i += 2 {
				if key := item.Content[i]; !lightmapKeys[key.Value] {
					return nil, fmt.Errorf("line %d: field %s not found in type scene.LightmapInfo", key.Line, key.Value)
				}
			}
		}
		var li LightmapInfo
		if err := item.Decode(&li); err != nil {
			return nil, err
		}
		lightmaps = append(lightmaps, li)
	}
	return lightmaps, nil
}

// Unmarshal decodes an Info from data. See Decode.
func Unmarshal(data []byte, opts ...DecodeOption) (Info, error) {
	return Decode(bytes.NewReader(data), opts...)
}

// Encode writes info to w as a YAML document.
func Encode(w io.Writer, info Info) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(info.normalized()); err != nil {
		return fmt.Errorf("scene: encode info: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("scene: encode info: %w", err)
	}
	return nil
}

// Marshal returns info encoded as a YAML document.
func Marshal(info Info) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, info); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads the Info stored at path.
func Load(path string, opts ...DecodeOption) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("scene: load info: %w", err)
	}
	defer f.Close()
	return Decode(f, opts...)
}

// Save writes info to path, replacing any existing file.
func Save(path string, info Info) error {
	data, err := Marshal(info)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scene: save info: %w", err)
	}
	return nil
}
