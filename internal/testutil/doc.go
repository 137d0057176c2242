// Package testutil provides builders shared by package tests: stub workers
// with canned capability results and a fixed-map resolver.
package testutil
