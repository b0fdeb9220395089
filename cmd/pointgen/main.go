// Command pointgen generates the datasets of a TOML recipe and saves them
// as snapshots.
//
// Usage:
//
//	pointgen -recipe recipe.toml
//
// A minimal recipe:
//
//	seed = 42
//
//	[store]
//	kind = "local"
//	path = "./datasets"
//	compression = "zstd"
//
//	[[dataset]]
//	name = "blobs"
//	layout = "gaussian"
//	amount = 500
//	clusters = 4
//	variance = 0.5
//	k = 4
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/hupe1980/pointgen"
	"github.com/hupe1980/pointgen/blobstore"
	minioblob "github.com/hupe1980/pointgen/blobstore/minio"
	s3blob "github.com/hupe1980/pointgen/blobstore/s3"
	"github.com/hupe1980/pointgen/codec"
	"github.com/hupe1980/pointgen/snapshot"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pointgen:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pointgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	recipePath := fs.String("recipe", "recipe.toml", "path to the TOML recipe")
	dryRun := fs.Bool("dry-run", false, "validate the recipe and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	recipe, err := loadRecipe(*recipePath)
	if err != nil {
		return err
	}
	if *dryRun {
		fmt.Fprintf(stdout, "recipe ok: %d datasets\n", len(recipe.Datasets))
		return nil
	}

	logger, err := newLogger(recipe, stderr)
	if err != nil {
		return err
	}

	blobs, err := openStore(ctx, recipe.Store)
	if err != nil {
		return err
	}

	snaps, err := newSnapshotStore(blobs, recipe)
	if err != nil {
		return err
	}

	metrics := &pointgen.BasicMetricsCollector{}
	opts := []pointgen.Option{
		pointgen.WithLogger(logger),
		pointgen.WithMetricsCollector(metrics),
		pointgen.WithBatchConcurrency(recipe.Concurrency),
	}
	if recipe.Seed != 0 {
		opts = append(opts, pointgen.WithSeed(recipe.Seed))
	}
	gen := pointgen.New(opts...)

	saved, err := generate(ctx, gen, logger, recipe)
	if err != nil {
		return err
	}

	if err := snaps.SaveAll(ctx, saved); err != nil {
		return err
	}
	for _, s := range saved {
		logger.LogSnapshot(ctx, s.Name, s.ID, nil)
	}

	stats := metrics.GetStats()
	logger.InfoContext(ctx, "run completed",
		"datasets", len(saved),
		"points", stats.GeneratePoints,
		"steps", stats.StepCount,
	)

	return printSummary(stdout, saved)
}

func generate(ctx context.Context, gen *pointgen.Generator, logger *pointgen.Logger, recipe *Recipe) ([]*snapshot.Snapshot, error) {
	results, err := gen.GenerateBatch(ctx, recipe.requests())
	if err != nil {
		return nil, err
	}

	snaps := make([]*snapshot.Snapshot, len(results))
	for i, res := range results {
		d := recipe.Datasets[i]
		log := logger.WithDataset(d.Name).WithLayout(d.Layout)
		log.DebugContext(ctx, "dataset generated", "points", len(res.Points))
		if d.K == 0 {
			snaps[i] = res.Snapshot(d.Name)
			continue
		}

		centroids, err := gen.Centroids(ctx, d.K, d.Amount)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", d.Name, err)
		}
		sess := gen.NewSession(res, centroids)
		step, err := sess.Step(ctx)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", d.Name, err)
		}
		log.WithK(d.K).InfoContext(ctx, "clustering step",
			"changed", step.Changed,
			"inertia", step.Inertia,
		)
		snaps[i] = sess.Snapshot(d.Name)
	}

	return snaps, nil
}

func newLogger(recipe *Recipe, w io.Writer) (*pointgen.Logger, error) {
	level, err := recipe.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if recipe.LogFormat == "json" {
		return pointgen.NewLogger(slog.NewJSONHandler(w, opts)), nil
	}
	return pointgen.NewLogger(slog.NewTextHandler(w, opts)), nil
}

func openStore(ctx context.Context, cfg Store) (blobstore.BlobStore, error) {
	var (
		store blobstore.BlobStore
		err   error
	)

	switch cfg.Kind {
	case "memory":
		store = blobstore.NewMemoryStore()
	case "local":
		store = blobstore.NewLocalStore(cfg.Path)
	case "s3":
		store, err = openS3(ctx, cfg)
	case "minio":
		store, err = minioblob.Dial(ctx, minioblob.Config{
			Endpoint:     cfg.Endpoint,
			AccessKey:    cfg.AccessKey,
			SecretKey:    cfg.SecretKey,
			Region:       cfg.Region,
			Secure:       cfg.Secure,
			Bucket:       cfg.Bucket,
			Prefix:       cfg.Prefix,
			CreateBucket: true,
		})
	default:
		err = fmt.Errorf("unknown store kind %q", cfg.Kind)
	}
	if err != nil {
		return nil, err
	}

	if cfg.BytesPerSec > 0 {
		store = blobstore.NewThrottledStore(store, cfg.BytesPerSec)
	}
	return store, nil
}

func openS3(ctx context.Context, cfg Store) (blobstore.BlobStore, error) {
	optFns := []func(*s3blob.Options){s3blob.WithPrefix(cfg.Prefix)}
	if cfg.Region != "" {
		optFns = append(optFns, s3blob.WithRegion(cfg.Region))
	}
	if cfg.Endpoint != "" {
		optFns = append(optFns, s3blob.WithEndpoint(cfg.Endpoint, true))
	}

	store, err := s3blob.New(ctx, cfg.Bucket, optFns...)
	if err != nil {
		return nil, err
	}
	if cfg.DDBTable == "" {
		return store, nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	baseURI := "s3://" + cfg.Bucket + "/" + cfg.Prefix
	return s3blob.NewDDBCommitStore(store, dynamodb.NewFromConfig(awsCfg), cfg.DDBTable, baseURI), nil
}

func newSnapshotStore(blobs blobstore.BlobStore, recipe *Recipe) (*snapshot.Store, error) {
	compression, err := snapshot.ParseCompression(recipe.Store.Compression)
	if err != nil {
		return nil, err
	}
	c, ok := codec.ByName(recipe.Store.Codec)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", recipe.Store.Codec)
	}

	return snapshot.NewStore(blobs,
		snapshot.WithCodec(c),
		snapshot.WithCompression(compression),
		snapshot.WithConcurrency(recipe.Concurrency),
	), nil
}

func printSummary(w io.Writer, snaps []*snapshot.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLAYOUT\tPOINTS\tSTEPS\tID")
	for _, s := range snaps {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", s.Name, s.Layout, len(s.Points), len(s.CentroidSteps), s.ID)
	}
	return tw.Flush()
}
