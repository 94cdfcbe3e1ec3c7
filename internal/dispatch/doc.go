// Package dispatch wraps the q workqueue tool and re-emits its output
// as JSON.
//
// q speaks a line-oriented text protocol: job submission answers with
// "Job (J-xxx) added successfully" and -list -tabs prints one
// tab-separated row per job. This package translates resource requests
// into q flags and parses both answer formats into structs that
// marshal to the JSON shape downstream schedulers consume.
package dispatch
