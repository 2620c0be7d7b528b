// Package repository provides a generic repository abstraction built on Bun
// for CRUD operations, querying, pagination, transactions, and upsert support.
package repository
