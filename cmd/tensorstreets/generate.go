package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mireles-dev/tensorstreets/config"
	"github.com/mireles-dev/tensorstreets/field"
	"github.com/mireles-dev/tensorstreets/geom"
	"github.com/mireles-dev/tensorstreets/streetgraph"
	"github.com/mireles-dev/tensorstreets/tensor"
)

// ErrHeightmapPathRequired is returned when --basis=heightmap is given
// without --heightmap-path.
var ErrHeightmapPathRequired = errors.New("tensorstreets: --heightmap-path is required when --basis=heightmap")

type generateCmd struct {
	Args struct {
		Config string `positional-arg-name:"CONFIG" required:"true" description:"YAML config file"`
	} `positional-args:"true"`

	Basis         string `long:"basis" choice:"rotating" choice:"radial" choice:"grid" choice:"heightmap" default:"rotating" description:"Basis field to fill before growth"`
	HeightmapPath string `long:"heightmap-path" description:"Blue-channel raster path; required when --basis=heightmap"`
	WaterMaskPath string `long:"water-mask-path" description:"Blue-channel raster path; zeroes cells marking water, applied after the basis fill"`
	Method        string `long:"method" choice:"hyperstreamlines" choice:"single" choice:"two" default:"two" description:"Growth method"`
	Major         bool   `long:"major-hyperstreamlines" description:"Run GenerateMajorHyperstreamlines instead of Generate"`
}

// Execute loads cfg, fills a tensor field with the chosen basis, grows a
// street graph over it, and prints a Stats summary.
func (c *generateCmd) Execute(_ []string) error {
	cfg, err := config.Load(c.Args.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	f := field.New(cfg.FieldHeight, cfg.FieldWidth)
	switch c.Basis {
	case "rotating":
		f.FillRotating()
	case "radial":
		f.FillRadial()
	case "grid":
		f.FillGrid(0, 1)
	case "heightmap":
		if c.HeightmapPath == "" {
			return ErrHeightmapPathRequired
		}
		if err := f.FillHeightmap(c.HeightmapPath); err != nil {
			return err
		}
	}

	if c.WaterMaskPath != "" {
		if err := f.ApplyWaterMask(c.WaterMaskPath); err != nil {
			return err
		}
	}

	degenerate, err := f.ComputeEigen()
	if err != nil {
		return err
	}

	region := geom.Region{
		BottomLeft: tensor.Vec2{X: cfg.BottomLeft.X, Y: cfg.BottomLeft.Y},
		TopRight:   tensor.Vec2{X: cfg.TopRight.X, Y: cfg.TopRight.Y},
	}
	g := streetgraph.New(region, f, cfg.DSep, streetgraph.WithSeedStrategy(streetgraph.SeedStrategy(cfg.SeedMethod)))

	ctx := context.Background()
	if c.Major {
		err = g.GenerateMajorHyperstreamlines(ctx)
	} else {
		err = g.Generate(ctx, methodFromFlag(c.Method))
	}
	if err != nil {
		return err
	}

	stats := g.Stats()
	fmt.Printf("degenerate cells: %d\n", degenerate)
	fmt.Printf("nodes: %d\n", stats.Nodes)
	fmt.Printf("roads: %d\n", stats.Roads)
	fmt.Printf("seeds: %d\n", stats.Seeds)
	fmt.Printf("truncated roads: %d\n", stats.TruncatedRoads)
	fmt.Printf("total path length: %.2f\n", stats.TotalPathLength)
	return nil
}

func methodFromFlag(s string) streetgraph.Method {
	switch s {
	case "hyperstreamlines":
		return streetgraph.MethodHyperstreamlines
	case "single":
		return streetgraph.MethodSingleDirection
	default:
		return streetgraph.MethodTwoDirections
	}
}
