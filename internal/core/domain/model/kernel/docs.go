// Package kernel contains shared value objects used across aggregates.
//
// Value objects here are immutable, validated at construction, and compared
// by value. They carry no persistence concerns; adapters map them to and
// from database columns.
package kernel
