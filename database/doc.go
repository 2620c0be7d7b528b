// Package database provides connection management for the school playground:
// per-dialect Bun connections, pool tuning, health checks, query logging
// hooks, a model registry, table migrations with optional foreign keys,
// SQL fixture execution, and error classification.
package database
