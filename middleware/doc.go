// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides JSON response helpers and CORS handling.

Request logging, request IDs, and panic recovery come from chi's
middleware stack (wired in the router); this package keeps only what chi
does not provide:

  - JSONResponse / ErrorResponse: uniform JSON bodies, errors always
    {"error": message}
  - ParseJSONBody: request body decoding
  - CORS: permissive cross-origin headers for the browser frontend
*/
package middleware
