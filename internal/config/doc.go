// Package config loads and validates runtime configuration for cleanup-kit.
//
// Configuration is read from `config.yaml` (in `.` or `config/`, or an
// explicit file) and can be overridden via CK_-prefixed environment
// variables, e.g. CK_FLYERS_OUT_DIR for flyers.out_dir.
package config
