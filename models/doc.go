// Package models defines the school-domain entities mapped with Bun:
// students with emails and an enrollment, teachers, classes, clubs with an
// optional advisor, the join tables wiring them together, and a seed run
// audit record. All models register themselves into the database model
// registry so migrations create tables in foreign-key order.
package models
