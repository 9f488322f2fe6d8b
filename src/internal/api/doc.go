// Package api provides the read-only REST API for warning list lookups.
//
// # Endpoints
//
//	GET  /api/v1/lists           all loaded lists with compile statistics
//	GET  /api/v1/lists/{name}    one list, optionally with its entries (?entries=true)
//	GET  /api/v1/lookup          ?value=...&list=... (both repeatable)
//	POST /api/v1/lookup          {"values": [...], "lists": [...]}
//	GET  /api/v1/health          dataset status
//	GET  /metrics                prometheus metrics, when enabled
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "not_found",
//	    "message": "unknown list: \"foo\""
//	  }
//	}
//
// Every request reads the collection currently installed in the store, so
// reloads take effect without restarting the server.
package api
