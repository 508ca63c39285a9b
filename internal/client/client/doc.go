// Package client is the authenticated HTTP client every resource module of
// the tutorias backend goes through.
//
// # Overview
//
// A Client resolves request paths against the configured base URL, attaches
// the stored bearer credential and turns every non-2xx answer or transport
// problem into a *Failure. Requests are described by Request; bodies are
// JSON (JSONBody), URL-encoded forms (FormBody) or multipart uploads
// (MultipartBody). Generated documents are fetched with Download.
//
// # Session expiry
//
// When the backend answers 401 to a request that is not a login or
// password-setup call while a credential is stored, the client reads the
// role, erases credential and role, and asks the Navigator to go to that
// role's login route. The *Failure is returned to the caller either way.
//
// # Error Handling
//
// Match failures with errors.Is: ErrUnavailable, ErrUnauthorized,
// ErrForbidden, ErrNotFound. Resource modules reject bad arguments before
// any I/O with errors wrapping ErrMissingArgument.
//
// Concurrency & Contexts
//
// A Client is safe for concurrent use. Every call takes a context.Context;
// deadlines come from it and from the configured request timeout. There are
// no retries.
package client
