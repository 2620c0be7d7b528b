// Package seed resets the schema and fills it with randomized school data.
// Row counts and ranges come from a Profile so tests can seed a small
// database while the default profile mirrors a realistic one.
package seed
