// Package benchmarks holds decode and encode benchmarks for both XML
// drivers. Build with -tags etree to run the single-entry benchmarks on the
// etree driver as well.
package benchmarks
