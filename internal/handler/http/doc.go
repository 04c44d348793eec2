// Package http implements the HTTP transport of the cargo-settings server.
//
// It wires the settings and contacts routes, decodes multipart, form and
// JSON update requests, and maps service errors onto status codes with a
// JSON message body. Request tracing, access logging, panic recovery and
// request timeouts are applied before requests reach the service layer.
package http
