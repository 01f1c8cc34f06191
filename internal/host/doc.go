// Package host is the hosting-platform surface visuals are written against:
// data views, selection identities, the selection manager, persisted object
// properties, and the visual lifecycle contract. The reference Service runs
// the query loop over sqlite-backed datasets.
package host
