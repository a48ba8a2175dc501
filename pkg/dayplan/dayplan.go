// Package dayplan exposes module-level metadata.
package dayplan

// Version is the planner release version.
const Version = "0.1.0"
