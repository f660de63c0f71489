// Package registry implements a dual-view store of tagged object schemas: an
// original repository kept exactly as registered, and a derived "llm"
// repository whose entries have blacklisted fields removed and optional/
// default wrappers stripped so a structured-output generator must always
// supply every field explicitly.
//
// A Registry is not safe for concurrent use. Every operation is a pure,
// bounded, in-memory computation; callers running registrations from multiple
// goroutines must serialize access to a given Registry themselves.
package registry
