// Package server implements the local decode service.
//
// The service is a thin HTTP front end over the msd package for tools
// that want decoding without linking Go code:
//
//	POST /api/decode   hex payload in the body, JSON record back
//	GET  /api/models   registered device models
//	GET  /healthz      liveness probe
//	GET  /ws           WebSocket: one hex payload per text message,
//	                   one JSON result per reply
//
// It binds to loopback by default and can optionally announce itself
// over mDNS (see internal/announce). There is no Bluetooth anywhere in
// here: payloads arrive from the caller, already extracted from
// whatever advertisement they rode in on.
package server
