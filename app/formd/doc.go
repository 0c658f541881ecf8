// Package formd is the BusinessOS form validation service.
//
// It serves a catalog of named forms (registration, customer, product,
// employee, expense and supplier), re-runs the same field rules the web app
// runs on the client, and stores accepted submissions. The browser copy of
// the rules is a convenience; this service is the boundary that decides.
//
// # Routes
//
//	GET  /health/live
//	GET  /health/ready
//	GET  /api/forms
//	GET  /api/forms/{form}
//	POST /api/forms/{form}/validate
//	POST /api/forms/{form}/submit
//	POST /api/password/strength
//
// Bodies may be JSON, url-encoded or multipart. Messages follow
// Accept-Language (en, fr) and can be forced with ?lang=.
//
// # Submit
//
// A submit sanitizes the values with the form's sanitizer plan, drives a
// form.Form through Submit, validates uploads with validator.ValidateFile and
// then persists:
//
//   - 201 {"id": ...} when stored
//   - 422 {"errors": {...}, "firstInvalid": ...} when any field or file is rejected
//   - 409 when the form's unique field is already taken
//
// Secret fields are bcrypt-hashed and transient fields (confirmPassword) are
// dropped before the payload reaches the Store. Secret values longer than
// MaxSecretBytes are rejected with a field error since bcrypt cannot hash them.
//
// The submit route is rate limited per client IP. Proxy headers only count
// when the peer is listed in TRUSTED_PROXIES.
//
// # Backends
//
// App picks each backend from Config: Postgres (PG_CONN_URL) for submissions,
// Redis (REDIS_URL) for the submit rate limiter and S3 (S3_BUCKET) for uploads.
// Each falls back to an in-memory implementation when unset.
package formd
