// Package response builds handler.Response values for the HTTP layer.
//
//	return response.JSON(descriptor)
//	return response.JSONWithStatus(map[string]string{"id": id}, http.StatusCreated)
//	return response.Error(response.ErrNotFound.WithMessage("unknown form"))
//
// # Errors
//
// HTTPError carries a status, a machine-readable code, a message and optional
// details. JSONErrorHandler renders any error returned by a Response:
// HTTPError values are sent as-is, errors with a StatusCode method are mapped
// to the matching predefined error, and everything else becomes a logged 500
// without details.
package response
