// Package upstream fetches the Kotlin backup model sources of a Tachiyomi fork
// from the GitHub contents API.
//
// Requests are issued one at a time and never retried: schema generation is a
// supervised bootstrap step, and any failed request aborts the whole run.
package upstream
