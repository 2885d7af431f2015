// Package watch triggers regeneration when the shared override file changes.
//
// The watcher observes the override file's directory through fsnotify and
// debounces bursts of events (editors typically produce several writes per
// save) before invoking the regeneration callback. It is the replacement for
// the original build-system trick of embedding the override file's bytes just
// to make the build system notice edits.
package watch
