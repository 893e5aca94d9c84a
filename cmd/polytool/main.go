// polytool is a CLI utility for inspecting and transforming polygon
// collision shapes stored as YAML files.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/hollowbeak/tessera/internal/config"
	"github.com/hollowbeak/tessera/internal/logger"
	"github.com/hollowbeak/tessera/pkg/units"
)

var tolerance float64

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	units.SetView(units.View{
		ScreenWidth:  float64(cfg.View.ScreenWidth),
		ScreenHeight: float64(cfg.View.ScreenHeight),
		Width:        cfg.View.WidthUnits,
	})
	tolerance = cfg.Collision.ContainmentTolerance

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		cmdInfo(args)
	case "closest":
		cmdClosest(args)
	case "contains":
		cmdContains(args)
	case "rotate":
		cmdRotate(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`polytool - polygon collision shape utility

Usage:
  polytool [flags] <command> [arguments]

Commands:
  info <shape.yaml>                      Show shape information
  closest <shape.yaml> <x> <y>           Closest point and segment to a position
  contains <shape.yaml> <x> <y>          Probe a position against points and segments
  rotate <shape.yaml> <degrees> [out]    Rotate around the centroid, write result

Examples:
  polytool info hitbox.yaml
  polytool closest hitbox.yaml 5 -1
  polytool -tolerance 0.1 contains hitbox.yaml 5 0
  polytool rotate hitbox.yaml 90 rotated.yaml`)
}

func parseCoord(sx, sy string) (units.Vector, error) {
	x, err := strconv.ParseFloat(sx, 64)
	if err != nil {
		return units.Vector{}, fmt.Errorf("invalid x coordinate %q", sx)
	}
	y, err := strconv.ParseFloat(sy, 64)
	if err != nil {
		return units.Vector{}, fmt.Errorf("invalid y coordinate %q", sy)
	}
	return units.NewVector(x, y, units.SceneUnits), nil
}

func fail(err error) {
	logger.Error("command failed", zap.Error(err))
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: polytool info <shape.yaml>")
		os.Exit(1)
	}

	poly, err := loadShape(args[0])
	if err != nil {
		fail(err)
	}
	logger.Debug("shape loaded", zap.String("path", args[0]), zap.Int("points", poly.PointCount()))

	fmt.Printf("Shape:    %s\n", args[0])
	fmt.Printf("Unit:     %s\n", poly.Unit())
	fmt.Printf("Points:   %d\n", poly.PointCount())
	fmt.Printf("Rotation: %.2f\n", poly.Rotation())

	if c, err := poly.Centroid(); err == nil {
		fmt.Printf("Centroid: (%.3f, %.3f)\n", c.X, c.Y)
	}

	for i := 0; i < poly.PointCount(); i++ {
		angle, err := poly.SegmentAngle(i)
		if err != nil {
			fail(err)
		}
		length, err := poly.SegmentLength(i)
		if err != nil {
			fail(err)
		}
		fmt.Printf("  segment %d: length %.3f, angle %.1f\n", i, length, angle)
	}
}

func cmdClosest(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: polytool closest <shape.yaml> <x> <y>")
		os.Exit(1)
	}

	poly, err := loadShape(args[0])
	if err != nil {
		fail(err)
	}
	pos, err := parseCoord(args[1], args[2])
	if err != nil {
		fail(err)
	}

	pt, err := poly.ClosestPoint(pos, false)
	if err != nil {
		fail(err)
	}
	ppos, err := pt.Position()
	if err != nil {
		fail(err)
	}
	dist, err := pt.Distance(pos)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Closest point:   %d at (%.3f, %.3f), distance %.3f\n", pt.Index(), ppos.X, ppos.Y, dist)

	seg, err := poly.ClosestSegment(pos)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Closest segment: %d (points %d-%d)\n", seg.Index, seg.First.Index(), seg.Second.Index())
}

func cmdContains(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: polytool contains <shape.yaml> <x> <y>")
		os.Exit(1)
	}

	poly, err := loadShape(args[0])
	if err != nil {
		fail(err)
	}
	pos, err := parseCoord(args[1], args[2])
	if err != nil {
		fail(err)
	}
	tol := units.NewVector(tolerance, tolerance, units.SceneUnits)

	if pt, ok := poly.PointAroundPosition(pos, tol); ok {
		fmt.Printf("Point:    %d within tolerance\n", pt.Index())
	} else {
		fmt.Println("Point:    none")
	}

	if seg, ok := poly.SegmentContainingPoint(pos, tolerance); ok {
		fmt.Printf("Segment:  %d contains the position\n", seg.Index)
	} else {
		fmt.Println("Segment:  none")
	}

	if poly.PointCount() > 0 {
		ok, err := poly.CentroidAroundPosition(pos, tol)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Centroid: %v\n", ok)
	}
}

func cmdRotate(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: polytool rotate <shape.yaml> <degrees> [output.yaml]")
		os.Exit(1)
	}

	poly, err := loadShape(args[0])
	if err != nil {
		fail(err)
	}
	degrees, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fail(fmt.Errorf("invalid angle %q", args[1]))
	}

	origin, err := poly.Centroid()
	if err != nil {
		fail(err)
	}
	poly.Rotate(degrees, origin)
	logger.Info("shape rotated",
		zap.Float64("degrees", degrees),
		zap.Float64("rotation", poly.Rotation()))

	out := args[0]
	if len(args) >= 3 {
		out = args[2]
	}
	if err := saveShape(out, poly); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s (rotation %.2f)\n", out, poly.Rotation())
}
