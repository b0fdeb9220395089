package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hupe1980/pointgen"
	"github.com/hupe1980/pointgen/codec"
	"github.com/hupe1980/pointgen/generator"
	"github.com/hupe1980/pointgen/snapshot"
)

// Recipe describes a generation run.
type Recipe struct {
	Seed        int64     `toml:"seed"`
	Concurrency int       `toml:"concurrency"`
	LogLevel    string    `toml:"log_level"`
	LogFormat   string    `toml:"log_format"`
	Store       Store     `toml:"store"`
	Datasets    []Dataset `toml:"dataset"`
}

// Store selects and configures the snapshot backend.
type Store struct {
	Kind        string `toml:"kind"` // local, memory, s3, minio
	Path        string `toml:"path"`
	Bucket      string `toml:"bucket"`
	Prefix      string `toml:"prefix"`
	Region      string `toml:"region"`
	Endpoint    string `toml:"endpoint"`
	AccessKey   string `toml:"access_key"`
	SecretKey   string `toml:"secret_key"`
	Secure      bool   `toml:"secure"`
	DDBTable    string `toml:"ddb_table"`
	BytesPerSec int    `toml:"bytes_per_sec"`
	Compression string `toml:"compression"`
	Codec       string `toml:"codec"`
}

// Dataset is one named request. K > 0 seeds K random centroids and runs a
// single clustering step before saving.
type Dataset struct {
	Name string `toml:"name"`
	pointgen.Request
	// Radius shadows Request.Radius so the recipe can spell it as a
	// number or a string.
	Radius Radius `toml:"radius"`
	K      int    `toml:"k"`
}

// Radius is a circle radius given as a TOML number or a numeric string.
type Radius float64

// UnmarshalTOML implements toml.Unmarshaler.
func (r *Radius) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		*r = Radius(v)
	case float64:
		*r = Radius(v)
	case string:
		f, err := generator.ParseRadius(v)
		if err != nil {
			return err
		}
		*r = Radius(f)
	default:
		return fmt.Errorf("radius: unsupported value %v (%T)", v, v)
	}
	return nil
}

func parseRecipe(data string) (*Recipe, error) {
	var r Recipe
	md, err := toml.Decode(data, &r)
	if err != nil {
		return nil, fmt.Errorf("parse recipe: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse recipe: unknown keys %v", undecoded)
	}
	r.applyDefaults()
	if err := r.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func loadRecipe(path string) (*Recipe, error) {
	var r Recipe
	md, err := toml.DecodeFile(path, &r)
	if err != nil {
		return nil, fmt.Errorf("load recipe %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load recipe %s: unknown keys %v", path, undecoded)
	}
	r.applyDefaults()
	if err := r.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Recipe) applyDefaults() {
	if r.Concurrency == 0 {
		r.Concurrency = 4
	}
	if r.LogLevel == "" {
		r.LogLevel = "info"
	}
	if r.LogFormat == "" {
		r.LogFormat = "text"
	}
	if r.Store.Kind == "" {
		r.Store.Kind = "local"
	}
	if r.Store.Kind == "local" && r.Store.Path == "" {
		r.Store.Path = "datasets"
	}
	if r.Store.Codec == "" {
		r.Store.Codec = codec.Default.Name()
	}
	for i := range r.Datasets {
		if d := &r.Datasets[i]; d.Radius != 0 {
			d.Request.Radius = float64(d.Radius)
		}
	}
}

func (r *Recipe) validate() error {
	if len(r.Datasets) == 0 {
		return errors.New("recipe has no datasets")
	}

	if _, err := r.level(); err != nil {
		return err
	}
	switch r.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", r.LogFormat)
	}

	switch r.Store.Kind {
	case "local", "memory":
	case "s3", "minio":
		if r.Store.Bucket == "" {
			return fmt.Errorf("store %s needs a bucket", r.Store.Kind)
		}
		if r.Store.Kind == "minio" && r.Store.Endpoint == "" {
			return errors.New("store minio needs an endpoint")
		}
	default:
		return fmt.Errorf("unknown store kind %q", r.Store.Kind)
	}
	if r.Store.DDBTable != "" && r.Store.Kind != "s3" {
		return errors.New("ddb_table requires store kind s3")
	}
	if _, err := snapshot.ParseCompression(r.Store.Compression); err != nil {
		return err
	}
	if _, ok := codec.ByName(r.Store.Codec); !ok {
		return fmt.Errorf("unknown codec %q", r.Store.Codec)
	}

	seen := make(map[string]bool, len(r.Datasets))
	for i, d := range r.Datasets {
		if d.Name == "" || strings.ContainsAny(d.Name, `/\`) {
			return fmt.Errorf("dataset %d: invalid name %q", i, d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("dataset %q defined twice", d.Name)
		}
		seen[d.Name] = true

		if err := d.Validate(); err != nil {
			return fmt.Errorf("dataset %q: %w", d.Name, err)
		}
		if d.K < 0 {
			return fmt.Errorf("dataset %q: k must not be negative", d.Name)
		}
	}

	return nil
}

func (r *Recipe) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(r.LogLevel)); err != nil {
		return l, fmt.Errorf("invalid log_level %q: %w", r.LogLevel, err)
	}
	return l, nil
}

func (r *Recipe) requests() []pointgen.Request {
	reqs := make([]pointgen.Request, len(r.Datasets))
	for i, d := range r.Datasets {
		reqs[i] = d.Request
	}
	return reqs
}
