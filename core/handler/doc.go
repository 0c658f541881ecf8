// Package handler defines the Response idiom used by the HTTP layer: handlers
// return a function that renders the response, and rendering errors flow to a
// single ErrorHandler.
//
//	r.Post("/api/forms/{form}/validate", handler.Wrap(func(r *http.Request) handler.Response {
//		res, err := svc.Validate(r)
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.JSON(res)
//	}, response.JSONErrorHandler(log)))
package handler
