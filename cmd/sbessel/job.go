package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	sphbessel "github.com/tphakala/go-spherical-bessel"
)

// jobFile is the YAML document read by the batch command.
type jobFile struct {
	// Workers bounds parallel transforms; 0 uses GOMAXPROCS.
	Workers int   `yaml:"workers"`
	Jobs    []job `yaml:"jobs"`
}

// job is one integral or transform over a tabulated function.
type job struct {
	Name      string    `yaml:"name"`
	Kind      string    `yaml:"kind"`
	Table     string    `yaml:"table"`
	L         int       `yaml:"l"`
	N         int       `yaml:"n"`
	Method    string    `yaml:"method"`
	Threshold float64   `yaml:"threshold"`
	K         []float64 `yaml:"k"`
}

// jobResult holds the output of one job. Value is set for integrals,
// K and Transform for transforms.
type jobResult struct {
	Name      string
	Kind      string
	Value     float64
	K         []float64
	Transform []complex128
}

// loadJobs reads and validates a job file. Relative table paths are
// resolved against the job file's directory.
func loadJobs(path string) (*jobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var jf jobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	if len(jf.Jobs) == 0 {
		return nil, fmt.Errorf("%s: no jobs", path)
	}

	dir := filepath.Dir(path)
	for i := range jf.Jobs {
		j := &jf.Jobs[i]
		if j.Name == "" {
			j.Name = fmt.Sprintf("job%d", i+1)
		}
		if j.Kind == "" {
			j.Kind = jobIntegrate
		}
		if err := j.validate(); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", path, j.Name, err)
		}
		if !filepath.IsAbs(j.Table) {
			j.Table = filepath.Join(dir, j.Table)
		}
	}
	return &jf, nil
}

// validate checks the fields the library does not.
func (j *job) validate() error {
	if j.Table == "" {
		return fmt.Errorf("missing table")
	}
	switch j.Kind {
	case jobIntegrate:
	case jobTransform:
		if len(j.K) == 0 {
			return fmt.Errorf("transform needs at least one k")
		}
	default:
		return fmt.Errorf("unknown kind %q", j.Kind)
	}
	if _, err := sphbessel.ParseMethod(j.Method); err != nil {
		return err
	}
	return nil
}

// config builds the library settings for j.
func (j *job) config(workers int) (*sphbessel.Config, error) {
	m, err := sphbessel.ParseMethod(j.Method)
	if err != nil {
		return nil, err
	}
	cfg := &sphbessel.Config{Method: m, Threshold: j.Threshold, Workers: workers}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runJob loads the job's table and evaluates it.
func runJob(ctx context.Context, j job, workers int) (jobResult, error) {
	x, f, err := loadTable(j.Table)
	if err != nil {
		return jobResult{}, err
	}
	cfg, err := j.config(workers)
	if err != nil {
		return jobResult{}, err
	}

	logger.Debug("Running job",
		zap.String("name", j.Name),
		zap.String("kind", j.Kind),
		zap.Int("points", len(x)),
		zap.Int("l", j.L),
		zap.Int("n", j.N))

	res := jobResult{Name: j.Name, Kind: j.Kind}
	switch j.Kind {
	case jobTransform:
		res.K = j.K
		res.Transform, err = sphbessel.TransformBatch(ctx, j.K, x, f, j.L, j.N, cfg)
	default:
		res.Value, err = sphbessel.IntegrateWithConfig(x, f, j.L, j.N, cfg)
	}
	if err != nil {
		return jobResult{}, fmt.Errorf("%s: %w", j.Name, err)
	}
	return res, nil
}

// writeResult prints r. Integrals are one "name value" line; transforms
// are one "name k re im" line per wavenumber.
func writeResult(w io.Writer, r jobResult) error {
	if r.Kind != jobTransform {
		_, err := fmt.Fprintf(w, "%s\t%s\n", r.Name, formatFloat(r.Value))
		return err
	}
	for i, k := range r.K {
		v := r.Transform[i]
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.Name, formatFloat(k), formatFloat(real(v)), formatFloat(imag(v))); err != nil {
			return err
		}
	}
	return nil
}
