// Package types defines the entity structs, Config, and standard errors for
// the cardbox storage system.
package types
