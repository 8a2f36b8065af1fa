// Package output renders playlist files and run reports.
//
// # Formats
//
// Two playlist formats are supported: flat m3u path lists and XML
// playlist descriptors compatible with Jellyfin's playlist folders.
// Report renderers cover the missing-track sidecar files and the
// run-level summaries.
//
// All renderers return strings; the caller decides where the bytes go.
package output
