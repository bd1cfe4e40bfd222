package main

import (
	"fmt"

	"github.com/mireles-dev/tensorstreets/config"
)

type inspectCmd struct {
	Args struct {
		Config string `positional-arg-name:"CONFIG" required:"true" description:"YAML config file"`
	} `positional-args:"true"`
}

// Execute loads and validates cfg, printing its settings on success.
func (c *inspectCmd) Execute(_ []string) error {
	cfg, err := config.Load(c.Args.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Printf("region: (%.2f, %.2f) - (%.2f, %.2f)\n",
		cfg.BottomLeft.X, cfg.BottomLeft.Y, cfg.TopRight.X, cfg.TopRight.Y)
	fmt.Printf("field size: %d x %d\n", cfg.FieldWidth, cfg.FieldHeight)
	fmt.Printf("d_sep: %.3f\n", cfg.DSep)
	fmt.Printf("seed method: %d\n", cfg.SeedMethod)
	fmt.Printf("draw nodes: %v\n", cfg.DrawNodes)
	return nil
}
