// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config loads wait and retry settings from a YAML file, with
// optional named profiles and environment variable overrides, and
// builds engines and policies from them.
//
// Settings are explicit values handed to each engine rather than
// process-wide state: loading a configuration twice yields two
// independent value objects.
//
// A minimal file:
//
//	wait:
//	  timeout: 30s
//	  interval: 500ms
//	retry:
//	  attempts: 3
//	  delay: 1s
//
// Profiles override the base settings for a named environment:
//
//	profiles:
//	  ci:
//	    wait:
//	      timeout: 2m
//
// The environment variables ABIDE_TIMEOUT, ABIDE_INTERVAL,
// ABIDE_ATTEMPTS, and ABIDE_DELAY override the corresponding file
// settings when set.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/abidelabs/abide"
	"github.com/abidelabs/abide/poll"
	"github.com/abidelabs/abide/retry"
)

// A Duration is a time.Duration that unmarshals from YAML duration
// strings such as "500ms" or "1m30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Wait holds the settings for a Checker.
type Wait struct {
	// Timeout bounds a whole wait. Must be positive.
	Timeout Duration `yaml:"timeout"`
	// Interval is the fixed sleep between predicate evaluations.
	// Must be positive.
	Interval Duration `yaml:"interval"`
}

// Retry holds the settings for a retry policy.
type Retry struct {
	// Attempts is the total number of attempts, including the
	// initial one. Must be at least 1.
	Attempts int `yaml:"attempts"`
	// Delay is the wait between attempts: the fixed delay, or the
	// backoff base when Jitter is set. Must not be negative, and must
	// be positive when Jitter is set.
	Delay Duration `yaml:"delay"`
	// MaxDelay caps the jittered exponential backoff. Required when
	// Jitter is set, ignored otherwise.
	MaxDelay Duration `yaml:"maxDelay"`
	// Jitter selects jittered exponential backoff instead of a fixed
	// delay.
	Jitter bool `yaml:"jitter"`
	// TransientOnly restricts retries to failures package transient
	// categorizes as transient. The default retries every failure.
	TransientOnly bool `yaml:"transientOnly"`
}

// Config is the root of the configuration file.
type Config struct {
	Wait     Wait               `yaml:"wait"`
	Retry    Retry              `yaml:"retry"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// A Profile overrides base settings for a named environment. Fields
// left unset inherit the base values.
type Profile struct {
	Wait  Wait  `yaml:"wait"`
	Retry Retry `yaml:"retry"`
}

// Default returns the configuration used where the file is silent:
// 30 second wait timeout polled every 500 milliseconds, and three
// attempts spaced one second apart.
func Default() Config {
	return Config{
		Wait: Wait{
			Timeout:  Duration(30 * time.Second),
			Interval: Duration(500 * time.Millisecond),
		},
		Retry: Retry{
			Attempts: 3,
			Delay:    Duration(time.Second),
		},
	}
}

// Load reads and parses the YAML file at path, fills unset fields from
// Default, applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Profile resolves the named profile against the base configuration:
// settings the profile sets win, everything else is inherited. The
// returned Config carries no profiles of its own.
func (c *Config) Profile(name string) (*Config, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("config: no such profile %q", name)
	}

	merged := Config{Wait: p.Wait, Retry: p.Retry}
	if err := mergo.Merge(&merged, Config{Wait: c.Wait, Retry: c.Retry}); err != nil {
		return nil, fmt.Errorf("config: merging profile %q: %w", name, err)
	}

	if err := validate(&merged); err != nil {
		return nil, fmt.Errorf("config: profile %q: %w", name, err)
	}
	return &merged, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("ABIDE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: ABIDE_TIMEOUT: %w", err)
		}
		cfg.Wait.Timeout = Duration(d)
	}
	if v := os.Getenv("ABIDE_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: ABIDE_INTERVAL: %w", err)
		}
		cfg.Wait.Interval = Duration(d)
	}
	if v := os.Getenv("ABIDE_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: ABIDE_ATTEMPTS: %w", err)
		}
		cfg.Retry.Attempts = n
	}
	if v := os.Getenv("ABIDE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: ABIDE_DELAY: %w", err)
		}
		cfg.Retry.Delay = Duration(d)
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.Wait.Timeout <= 0 {
		return fmt.Errorf("config: wait.timeout must be positive")
	}
	if cfg.Wait.Interval <= 0 {
		return fmt.Errorf("config: wait.interval must be positive")
	}
	if cfg.Retry.Attempts < 1 {
		return fmt.Errorf("config: retry.attempts must be at least 1")
	}
	if cfg.Retry.Delay < 0 {
		return fmt.Errorf("config: retry.delay must not be negative")
	}
	if cfg.Retry.Jitter {
		if cfg.Retry.Delay <= 0 {
			return fmt.Errorf("config: retry.delay must be positive when jitter is set")
		}
		if cfg.Retry.MaxDelay < cfg.Retry.Delay {
			return fmt.Errorf("config: retry.maxDelay must be at least retry.delay when jitter is set")
		}
	}
	return nil
}

// Checker builds a Checker from the wait settings.
func (c *Config) Checker() *abide.Checker {
	return &abide.Checker{
		Timeout:  time.Duration(c.Wait.Timeout),
		Interval: poll.Every(time.Duration(c.Wait.Interval)),
	}
}

// Policy builds a retry policy from the retry settings.
func (c *Config) Policy() retry.Policy {
	classifier := retry.Classifier(retry.RetryAll)
	if c.Retry.TransientOnly {
		classifier = retry.Transient
	}

	decider := retry.Times(c.Retry.Attempts - 1)

	var waiter retry.Waiter
	if c.Retry.Jitter {
		waiter = retry.NewExpWaiter(time.Duration(c.Retry.Delay), time.Duration(c.Retry.MaxDelay), time.Now())
	} else {
		waiter = retry.NewFixedWaiter(time.Duration(c.Retry.Delay))
	}

	return retry.NewPolicy(classifier, decider, waiter)
}

// Executor builds an Executor from the retry settings.
func (c *Config) Executor() *abide.Executor {
	return &abide.Executor{Policy: c.Policy()}
}
