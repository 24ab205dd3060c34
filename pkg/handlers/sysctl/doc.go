// Package sysctl persists kernel parameters in a sysctl.d drop-in and,
// with --now, applies them through sysctl(8).
//
// Only the write form is supported: -w or --write must appear somewhere in
// the arguments. Tokens that are neither KEY=VALUE nor options are ignored.
package sysctl
