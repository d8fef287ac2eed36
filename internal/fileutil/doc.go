// Package fileutil holds small filesystem helpers shared by the cache, the
// records file and the exporters.
package fileutil
