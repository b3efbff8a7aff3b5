// Package appconfig is a shared application settings store.
//
// A Config is seeded from the embedded defaults.yaml. Every reference
// obtained from the same Holder points at the same Config, so a Set through
// one reference is visible through all others. Reset restores the defaults
// in place without replacing the instance.
//
// Use NewHolder to create an injectable holder, or Shared for the
// process-wide one.
package appconfig
