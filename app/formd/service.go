package formd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/emmydush/businessos/core/binder"
	"github.com/emmydush/businessos/core/form"
	"github.com/emmydush/businessos/core/i18n"
	"github.com/emmydush/businessos/core/logger"
	"github.com/emmydush/businessos/core/sanitizer"
	"github.com/emmydush/businessos/core/validator"
)

// MaxSecretBytes is the longest secret value bcrypt can hash.
const MaxSecretBytes = 72

// ValidationError reports rejected fields, keyed by field name.
type ValidationError struct {
	Errors       map[string]string `json:"errors"`
	FirstInvalid string            `json:"firstInvalid"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d invalid field(s), first %q", form.ErrValidationFailed, len(e.Errors), e.FirstInvalid)
}

func (e *ValidationError) Unwrap() error {
	return form.ErrValidationFailed
}

// Service validates, sanitizes and stores submissions for a Catalog.
type Service struct {
	catalog    *Catalog
	i18n       *i18n.I18n
	store      Store
	uploads    UploadStore
	log        *slog.Logger
	bcryptCost int
	now        func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithStore sets the submission store (default: MemoryStore).
func WithStore(s Store) ServiceOption {
	return func(svc *Service) {
		if s != nil {
			svc.store = s
		}
	}
}

// WithUploads sets the attachment store (default: MemoryUploads).
func WithUploads(u UploadStore) ServiceOption {
	return func(svc *Service) {
		if u != nil {
			svc.uploads = u
		}
	}
}

// WithServiceLogger sets the service logger.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(svc *Service) {
		if l != nil {
			svc.log = l
		}
	}
}

// WithBcryptCost sets the cost used to hash secret fields.
func WithBcryptCost(cost int) ServiceOption {
	return func(svc *Service) {
		svc.bcryptCost = cost
	}
}

// WithClock overrides time.Now for submission timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(svc *Service) {
		if now != nil {
			svc.now = now
		}
	}
}

// NewService returns a Service for catalog. Messages resolve through catalogI18n.
func NewService(catalog *Catalog, catalogI18n *i18n.I18n, opts ...ServiceOption) *Service {
	svc := &Service{
		catalog:    catalog,
		i18n:       catalogI18n,
		store:      NewMemoryStore(),
		uploads:    NewMemoryUploads(),
		log:        logger.Nop(),
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Catalog returns the served forms.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Translator returns a validation translator for lang.
func (s *Service) Translator(lang string) *i18n.Translator {
	if lang == "" {
		lang = s.i18n.DefaultLanguage()
	}
	return i18n.NewTranslator(s.i18n, lang, form.Namespace)
}

// Validate sanitizes values in place and checks them against def.
func (s *Service) Validate(def Definition, values form.Values, tr form.Translator) (form.Result, error) {
	if err := sanitizer.SanitizeValues(values, def.Sanitize); err != nil {
		return form.Result{}, err
	}
	res := form.ValidateLocalized(values, def.Schema, tr)
	mergeErrors(res.Errors, secretErrors(def, values, tr))
	res.Valid = len(res.Errors) == 0
	return res, nil
}

// Submit runs the server-side mirror of the client form: sanitize, validate
// fields and files, then persist. Rejected input yields *ValidationError.
func (s *Service) Submit(ctx context.Context, def Definition, payload *binder.Payload, tr form.Translator) (*Submission, error) {
	values := payload.Values.Clone()
	if values == nil {
		values = form.Values{}
	}
	if err := sanitizer.SanitizeValues(values, def.Sanitize); err != nil {
		return nil, err
	}

	log := s.log.With(logger.Form(def.Name))
	f := form.New(values, def.Schema,
		form.WithName(def.Name),
		form.WithLogger(s.log),
		form.WithTranslator(tr),
	)

	extra := s.checkFiles(def, payload, tr)
	mergeErrors(extra, secretErrors(def, values, tr))
	if len(extra) > 0 {
		errs := f.Errors()
		if errs == nil {
			errs = make(map[string]string, len(extra))
		}
		mergeErrors(errs, extra)
		verr := &ValidationError{Errors: errs, FirstInvalid: firstInvalid(def, errs)}
		log.DebugContext(ctx, "submission rejected", logger.Result("invalid"), logger.Field(verr.FirstInvalid))
		return nil, verr
	}

	var sub *Submission
	err := f.Submit(ctx, func(ctx context.Context, values form.Values) error {
		var err error
		sub, err = s.persist(ctx, def, values, payload)
		return err
	})

	var serr *form.SubmitError
	switch {
	case err == nil:
		log.InfoContext(ctx, "submission stored", logger.Result("stored"), logger.SubmissionID(sub.ID.String()))
		return sub, nil
	case errors.As(err, &serr):
		log.DebugContext(ctx, "submission rejected", logger.Result("invalid"), logger.Field(serr.FirstInvalid))
		return nil, &ValidationError{Errors: serr.Errors, FirstInvalid: serr.FirstInvalid}
	default:
		return nil, err
	}
}

func (s *Service) checkFiles(def Definition, payload *binder.Payload, tr form.Translator) map[string]string {
	errs := make(map[string]string)
	for _, ff := range def.Files {
		upload := payload.File(ff.Name)
		if upload == nil {
			if ff.Required {
				label := ff.Label
				if label == "" {
					label = ff.Name
				}
				errs[ff.Name] = tr.T(form.MsgRequired, i18n.M{"field": label})
			}
			continue
		}
		if res := validator.ValidateFile(&upload.File, ff.Options); !res.Valid {
			errs[ff.Name] = tr.T(string(res.Failed[0]), i18n.M(ff.Options.Placeholders()))
		}
	}
	return errs
}

// secretErrors reports secret fields bcrypt cannot hash.
func secretErrors(def Definition, values form.Values, tr form.Translator) map[string]string {
	errs := make(map[string]string)
	for _, name := range def.Secret {
		v := values[name]
		if form.IsFalsy(v) || len(fmt.Sprint(v)) <= MaxSecretBytes {
			continue
		}
		label := name
		if rule, ok := def.Schema.Rule(name); ok && rule.Label != "" {
			label = rule.Label
		}
		errs[name] = tr.T(MsgSecretTooLong, i18n.M{"field": label, "max": MaxSecretBytes})
	}
	return errs
}

// mergeErrors copies src into dst without replacing existing errors.
func mergeErrors(dst, src map[string]string) {
	for name, msg := range src {
		if _, ok := dst[name]; !ok {
			dst[name] = msg
		}
	}
}

func (s *Service) persist(ctx context.Context, def Definition, values form.Values, payload *binder.Payload) (*Submission, error) {
	sub := &Submission{
		ID:        uuid.New(),
		Form:      def.Name,
		Payload:   make(map[string]any, len(values)),
		CreatedAt: s.now().UTC(),
	}

	for _, fld := range def.Schema {
		v, ok := values[fld.Name]
		if !ok || slices.Contains(def.Transient, fld.Name) {
			continue
		}
		if slices.Contains(def.Secret, fld.Name) && !form.IsFalsy(v) {
			hash, err := bcrypt.GenerateFromPassword([]byte(fmt.Sprint(v)), s.bcryptCost)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrHashFailed, fld.Name, err)
			}
			v = string(hash)
		}
		sub.Payload[fld.Name] = v
	}

	if def.Unique != "" {
		if v := values[def.Unique]; !form.IsFalsy(v) {
			sub.UniqueKey = strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))
		}
	}

	dir := path.Join(def.Name, sub.ID.String())
	for _, ff := range def.Files {
		upload := payload.File(ff.Name)
		if upload == nil {
			continue
		}
		obj, err := s.uploads.Save(ctx, upload.Header, dir)
		if err != nil {
			s.discard(ctx, sub.Attachments)
			return nil, fmt.Errorf("%w: %s: %w", ErrUploadFailed, ff.Name, err)
		}
		sub.Attachments = append(sub.Attachments, Attachment{
			Field:       ff.Name,
			Key:         obj.Key,
			Filename:    obj.Filename,
			Size:        obj.Size,
			ContentType: obj.ContentType,
			URL:         obj.URL,
		})
	}

	if err := s.store.Create(ctx, sub); err != nil {
		s.discard(ctx, sub.Attachments)
		return nil, err
	}
	return sub, nil
}

// discard removes uploads of a submission that could not be stored.
func (s *Service) discard(ctx context.Context, attachments []Attachment) {
	for _, a := range attachments {
		if err := s.uploads.Delete(context.WithoutCancel(ctx), a.Key); err != nil {
			s.log.WarnContext(ctx, "failed to remove orphaned upload", logger.Key("key", a.Key), logger.Error(err))
		}
	}
}

func firstInvalid(def Definition, errs map[string]string) string {
	for _, fld := range def.Schema {
		if _, ok := errs[fld.Name]; ok {
			return fld.Name
		}
	}
	for _, ff := range def.Files {
		if _, ok := errs[ff.Name]; ok {
			return ff.Name
		}
	}
	return ""
}
