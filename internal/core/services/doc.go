// Package services implements the driving port interfaces.
// Services orchestrate calls to driven ports (document store, patcher,
// history, config) and hold no I/O of their own.
package services
