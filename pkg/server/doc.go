// Package server hosts a live toast preview over HTTP and WebSocket.
//
// A Server owns one shared document. Every read or write of that document
// runs on the server's event loop, and toast timers fire through the same
// loop, so the document needs no locks.
//
// # Routes
//
//	GET    /                  full page with the toast container
//	GET    /api/toasts        list toasts in the container
//	POST   /api/toasts        show a toast: {"message": "...", "type": "success"}
//	                          (an empty type is shown as info)
//	DELETE /api/toasts/{id}   click the toast's close button
//	GET    /ws                toast lifecycle stream
//	GET    /metrics           Prometheus metrics
//	GET    /healthz           liveness probe
//
// # WebSocket Protocol
//
// The server sends one JSON message per lifecycle event:
//
//	{"event": "vango:toast", "kind": "shown", "id": "...", "level": "info",
//	 "variant": "info", "message": "...", "html": "<div ...>"}
//
// Clients close a toast by sending the close button's data-hid, with the
// toast ID as a fallback:
//
//	{"action": "close", "hid": "h3", "id": "..."}
//
// # Usage
//
//	srv := server.New(server.Config{Address: ":3000"})
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
