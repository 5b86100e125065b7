// Package kv provides the durable key-value providers the store persists
// into: an in-memory map for tests, flat JSON files, and a bbolt database
// file. Values are opaque strings; the store owns their encoding.
package kv

// Store is the minimal contract the persistent store needs. Get reports
// presence separately from errors so "never written" is distinguishable from
// "unreadable". Set must be durable when it returns.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
