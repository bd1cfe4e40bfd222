// Package config loads and saves the YAML-encoded settings a host uses to
// drive one generation run: region bounds, initial tensor-field size,
// separation distance, seed-initialization method, and the renderer's
// "draw nodes" toggle.
package config
