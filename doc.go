// Package apiserver is a small HTTP service exposing operational probes,
// with a test-client kit that exercises it in-process, without a network
// listener.
package apiserver
