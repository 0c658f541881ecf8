package formd

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emmydush/businessos/core/binder"
	"github.com/emmydush/businessos/core/form"
	"github.com/emmydush/businessos/core/handler"
	"github.com/emmydush/businessos/core/i18n"
	"github.com/emmydush/businessos/core/response"
	"github.com/emmydush/businessos/core/validator"
	"github.com/emmydush/businessos/middleware"
)

// SubmitResponse is the body of a 201 submit answer.
type SubmitResponse struct {
	ID string `json:"id"`
}

// PasswordRequest is the body of a password strength request.
type PasswordRequest struct {
	Password string `json:"password"`
}

// ListForms answers GET /api/forms.
func (s *Service) ListForms(*http.Request) handler.Response {
	return response.JSON(Summaries(s.catalog))
}

// GetForm answers GET /api/forms/{form}.
func (s *Service) GetForm(r *http.Request) handler.Response {
	def, err := s.definition(r)
	if err != nil {
		return response.Error(err)
	}
	return response.JSON(Describe(def))
}

// ValidateForm answers POST /api/forms/{form}/validate with a Result.
// Invalid input is still a 200: the body carries isValid=false.
func (s *Service) ValidateForm(r *http.Request) handler.Response {
	def, err := s.definition(r)
	if err != nil {
		return response.Error(err)
	}

	payload, err := binder.Bind(r)
	if err != nil {
		return response.Error(bindError(err))
	}
	defer func() { _ = payload.Close() }()

	res, err := s.Validate(def, payload.Values, s.translator(r))
	if err != nil {
		return response.Error(err)
	}
	return response.JSON(res)
}

// SubmitForm answers POST /api/forms/{form}/submit.
func (s *Service) SubmitForm(r *http.Request) handler.Response {
	def, err := s.definition(r)
	if err != nil {
		return response.Error(err)
	}

	payload, err := binder.Bind(r)
	if err != nil {
		return response.Error(bindError(err))
	}
	defer func() { _ = payload.Close() }()

	sub, err := s.Submit(r.Context(), def, payload, s.translator(r))
	var verr *ValidationError
	switch {
	case err == nil:
		return response.JSONWithStatus(SubmitResponse{ID: sub.ID.String()}, http.StatusCreated)
	case errors.As(err, &verr):
		return response.JSONWithStatus(verr, http.StatusUnprocessableEntity)
	case errors.Is(err, ErrDuplicate):
		return response.Error(response.ErrConflict.
			WithMessage("A submission with this value already exists").
			WithDetails(map[string]any{"field": def.Unique}))
	default:
		return response.Error(err)
	}
}

// PasswordStrength answers POST /api/password/strength with a localized
// password assessment.
func (s *Service) PasswordStrength(r *http.Request) handler.Response {
	var req PasswordRequest
	if err := binder.DecodeJSON(r, &req); err != nil {
		return response.Error(bindError(err))
	}

	a := validator.ValidatePassword(req.Password)
	tr := s.translator(r)
	placeholders := i18n.M{"min": validator.MinPasswordLength, "max": validator.MaxPasswordLength}
	for i, failed := range a.Failed {
		a.Errors[i] = tr.T(string(failed), placeholders)
	}
	return response.JSON(a)
}

func (s *Service) definition(r *http.Request) (Definition, error) {
	name := chi.URLParam(r, "form")
	def, err := s.catalog.Lookup(name)
	if err != nil {
		return Definition{}, response.ErrNotFound.
			WithMessage("Form not found").
			WithDetails(map[string]any{"form": name}).
			WithError(err)
	}
	return def, nil
}

func (s *Service) translator(r *http.Request) form.Translator {
	if tr, ok := middleware.GetTranslator(r.Context()); ok && tr.Namespace() == form.Namespace {
		return tr
	}
	return s.Translator("")
}

func bindError(err error) error {
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return response.ErrUnsupportedMediaType.WithError(err)
	case errors.Is(err, binder.ErrBodyTooLarge):
		return response.ErrRequestEntityTooLarge.WithError(err)
	case errors.Is(err, binder.ErrFailedToParseJSON), errors.Is(err, binder.ErrFailedToParseForm):
		return response.ErrBadRequest.WithError(err)
	default:
		return err
	}
}
