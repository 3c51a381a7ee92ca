package scene

import "testing"

func TestAtlasSizeFor(t *testing.T) {
	tests := []struct {
		px   int
		want AtlasSize
	}{
		{32, AtlasSize32},
		{64, AtlasSize64},
		{512, AtlasSize512},
		{2048, AtlasSize2048},
		{4096, AtlasSize4096},
		{1024, AtlasSize1024},
		{100, DefaultAtlasSize},
		{0, DefaultAtlasSize},
		{8192, DefaultAtlasSize},
		{-64, DefaultAtlasSize},
	}
	for _, tt := range tests {
		if got := AtlasSizeFor(tt.px); got != tt.want {
			t.Errorf("AtlasSizeFor(%d) = %v, want %v", tt.px, got, tt.want)
		}
	}
}

func TestAtlasSizes(t *testing.T) {
	sizes := AtlasSizes()
	if len(sizes) != 8 || sizes[0] != AtlasSize32 || sizes[7] != AtlasSize4096 {
		t.Fatalf("AtlasSizes() = %v", sizes)
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] != sizes[i-1]*2 {
			t.Errorf("sizes not successive powers of two: %v", sizes)
		}
	}
	sizes[0] = 7
	if AtlasSizes()[0] != AtlasSize32 {
		t.Error("AtlasSizes() exposes the internal table")
	}
	if AtlasSize(100).Valid() || !AtlasSize256.Valid() {
		t.Error("Valid() wrong")
	}
}

func TestQualityString(t *testing.T) {
	if QualityHigh.String() != "High" || QualityLow.String() != "Low" {
		t.Errorf("names: %v %v", QualityHigh, QualityLow)
	}
	if got := Quality(9).String(); got != "Quality(9)" {
		t.Errorf("Quality(9).String() = %q", got)
	}
}

func TestDefaultLightmapSettings(t *testing.T) {
	s := DefaultLightmapSettings()
	if s.IndirectLightingIntensity != 1 || s.GlobalObjectsScale != 1 {
		t.Errorf("scales = %v, %v", s.IndirectLightingIntensity, s.GlobalObjectsScale)
	}
	if s.ChartsPadding != 3 || s.BounceCount != 1 {
		t.Errorf("padding/bounces = %v, %v", s.ChartsPadding, s.BounceCount)
	}
	if s.AtlasSize != AtlasSize1024 || s.Quality != QualityHigh {
		t.Errorf("atlas/quality = %v, %v", s.AtlasSize, s.Quality)
	}
	if !s.CompressLightmaps || !s.UseGeometryWithNoMaterials {
		t.Error("flags should default to true")
	}
}
