// Package apierror renders the uniform JSON error envelope used by every
// service in the platform:
//
//	{
//	  "code": "ORG_FORBIDDEN",
//	  "message": "X-ORG-ID is not allowed for this user",
//	  "correlationId": "2f1f6c3e-...",
//	  "path": "/api/catalog/products",
//	  "timestamp": "2025-04-02T10:15:04Z"
//	}
//
// The correlation ID is pulled from the request context, which requires the
// correlation middleware to run earlier in the chain. Serialization degrades
// gracefully: a rejection always produces a body, even if structured encoding
// fails.
package apierror
