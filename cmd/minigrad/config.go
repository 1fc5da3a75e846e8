package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// envPrefix namespaces the environment variables that provide flag defaults.
const envPrefix = "MINIGRAD_"

// loadEnv loads path into the environment. Variables already set win.
func loadEnv(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	return errors.Wrapf(godotenv.Load(path), "failed to load environment file %s", path)
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := envString(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		klog.Warningf("ignoring %s%s=%q: %v", envPrefix, key, v, err)
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := envString(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		klog.Warningf("ignoring %s%s=%q: %v", envPrefix, key, v, err)
		return def
	}
	return f
}
