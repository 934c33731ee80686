// Package sample provides the fixed records encoded by the benchmark.
//
// Record uses 64-bit integers so that every measured format can represent
// it. WideRecord carries 128-bit integers and is only supported by the Borsh
// strategy.
package sample
