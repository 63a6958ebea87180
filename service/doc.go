// Package service exposes the pi engine over HTTP.
//
// Endpoints:
//
//	GET /pidigits/?digits=N[&limit=L]  → JSON string "3.1415…"
//	GET /healthz                       → {"status":"ok"}
//	GET /metrics                       → Prometheus exposition
//
// A computation is a blocking, CPU-bound unit of work. Service runs each one
// on its own goroutine behind a fixed number of worker slots; the request
// context bounds the wait, not the computation. Finished results seed a
// prefix cache: since more digits never change earlier ones, the longest
// string computed so far answers every shorter request.
package service
