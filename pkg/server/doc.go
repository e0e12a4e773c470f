// Package server exposes the auditors over HTTP.
//
// # Endpoints
//
//	GET  /healthz                 liveness probe
//	GET  /journals                every registered specification
//	GET  /journals/{name}         one specification, by name or alias
//	POST /audit/code?journal=     audit the plotting source in the body
//	POST /audit/figure?journal=   audit a JSON figure description
//	POST /render?journal=&format= encode a JSON figure description
//
// Audit endpoints answer with the JSON report written by io.WriteReport.
// Adding strict=true marks the report strict so warnings count as blocking.
// The journal defaults to "nature".
//
// Errors are JSON objects carrying the error code and message:
//
//	{"code": "JOURNAL_NOT_FOUND", "error": "unknown journal: \"foo\". Available: ..."}
//
// # Caching
//
// Code and figure audits are cached by journal and request body through a
// [cache.Cache]; pass [cache.NewNullCache] to disable caching. Each request
// uses its own auditor, so the server is safe for concurrent requests.
package server
