// Package model defines the display models for Sigrid analysis results and
// the tolerant normalization layer that produces them.
//
// The Sigrid API returns loosely shaped JSON: fields move between releases,
// several keys alias the same concept, and extension metadata travels in
// generic name/value property bags. Every mapper in this package therefore
// follows the same contract: given any decoded JSON value (nil, the wrong
// type, or partially populated), it produces the best-effort typed record or
// nil, and it never panics. Records missing their required identifying field
// are dropped rather than half-filled.
//
// The same mappers run against both live API payloads and the locally
// persisted cache, so a cache written from these models always restores to
// identical values.
package model
