// Command gmathdemo builds a camera from the command line and prints its
// view and projection matrices.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gmath"
	"github.com/gogpu/gmath/scene"
)

func main() {
	var (
		eye     = flag.String("eye", "0,2,-5", "camera position x,y,z")
		target  = flag.String("target", "0,0,0", "point the camera looks at")
		up      = flag.String("up", "0,1,0", "camera up direction")
		fov     = flag.Float64("fov", 60, "vertical field of view in degrees")
		aspect  = flag.Float64("aspect", 16.0/9.0, "viewport width divided by height")
		near    = flag.Float64("near", 0.1, "near clip distance")
		far     = flag.Float64("far", 100, "far clip distance")
		info    = flag.String("scene", "", "optional scene info file to summarize")
		verbose = flag.Bool("v", false, "log degenerate inputs")
	)
	flag.Parse()

	if *verbose {
		gmath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	eyePos, err := parseVec3(*eye)
	if err != nil {
		log.Fatalf("-eye: %v", err)
	}
	targetPos, err := parseVec3(*target)
	if err != nil {
		log.Fatalf("-target: %v", err)
	}
	upDir, err := parseVec3(*up)
	if err != nil {
		log.Fatalf("-up: %v", err)
	}

	view := gmath.LookAt(eyePos, targetPos, upDir)
	proj := gmath.PerspectiveFov(float32(*fov*math.Pi/180), float32(*aspect), float32(*near), float32(*far))
	viewProj := gmath.Multiply(view, proj)

	printMatrix("view", view)
	printMatrix("projection", proj)
	printMatrix("view*projection", viewProj)

	clip := gmath.TransformPosition(viewProj, targetPos)
	if clip.W != 0 {
		fmt.Printf("target in NDC: (%.4f, %.4f, %.4f)\n", clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W)
	}

	inv := gmath.Invert(viewProj)
	if inv == gmath.Zero {
		log.Printf("view*projection is singular")
	} else {
		back := gmath.TransformPosition(inv, gmath.V3(0, 0, 0))
		fmt.Printf("NDC origin in world: (%.4f, %.4f, %.4f)\n", back.X/back.W, back.Y/back.W, back.Z/back.W)
	}

	if *info != "" {
		si, err := scene.Load(*info)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
		fmt.Printf("scene %q: %d lightmap(s), atlas %v, quality %v\n",
			si.Title, len(si.Lightmaps), si.LightmapSettings.AtlasSize, si.LightmapSettings.Quality)
	}
}

func parseVec3(s string) (gmath.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return gmath.Vector3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var xyz [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return gmath.Vector3{}, err
		}
		xyz[i] = float32(f)
	}
	return gmath.V3(xyz[0], xyz[1], xyz[2]), nil
}

func printMatrix(name string, m gmath.Matrix) {
	fmt.Printf("%s:\n", name)
	for i := 0; i < 4; i++ {
		r := m.Row(i)
		fmt.Printf("  %10.4f %10.4f %10.4f %10.4f\n", r.X, r.Y, r.Z, r.W)
	}
}
