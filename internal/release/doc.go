// Package release decides whether a commit should be published and renders
// the commit and pull request messages that accompany a release.
//
// Everything here is pure: no I/O, no shared state. Callers gather git facts
// and configuration elsewhere and pass them in as values.
package release
