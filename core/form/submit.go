package form

import (
	"context"
	"fmt"
	"time"

	"github.com/emmydush/businessos/core/logger"
	"github.com/emmydush/businessos/pkg/async"
)

// Preventer is implemented by UI events whose default action must be suppressed.
type Preventer interface {
	PreventDefault()
}

// SubmitFunc receives a copy of the validated values.
type SubmitFunc func(ctx context.Context, values Values) error

// HandleSubmit runs the submit flow for ev:
//
//   - ev.PreventDefault is called when ev is non-nil
//   - every schema field is marked touched and the submit count increments
//   - invalid values call the focus hook with the first invalid field and
//     return a *SubmitError without calling submit
//   - valid values are passed to submit with the form unlocked
//
// A submit callback error or panic is returned wrapped in ErrSubmitFailed.
// A call made while another submit is running returns ErrSubmitInProgress.
func (f *Form) HandleSubmit(ctx context.Context, ev Preventer, submit SubmitFunc) error {
	if ev != nil {
		ev.PreventDefault()
	}

	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}

	for _, fld := range f.schema {
		f.touched[fld.Name] = true
	}
	f.submitCount++
	f.revalidate()

	if len(f.errors) > 0 {
		serr := newSubmitError(f.firstInvalidLocked(), f.errors)
		focus := f.focus
		f.mu.Unlock()

		f.log.DebugContext(ctx, "submit rejected by validation",
			logger.Field(serr.FirstInvalid),
			logger.Count("invalid_fields", len(serr.Errors)),
		)
		if focus != nil && serr.FirstInvalid != "" {
			focus(serr.FirstInvalid)
		}
		return serr
	}

	f.submitting = true
	values := f.values.Clone()
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	start := time.Now()
	if err := runSubmit(ctx, submit, values); err != nil {
		f.log.ErrorContext(ctx, "submit failed", logger.Error(err), logger.Duration(time.Since(start)))
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	f.log.DebugContext(ctx, "submit succeeded", logger.Duration(time.Since(start)))
	return nil
}

// Submit is HandleSubmit without an event.
func (f *Form) Submit(ctx context.Context, submit SubmitFunc) error {
	return f.HandleSubmit(ctx, nil, submit)
}

// SubmitAsync runs Submit in the background.
func (f *Form) SubmitAsync(ctx context.Context, submit SubmitFunc) *async.ExecFuture {
	return async.Exec(ctx, submit, f.Submit)
}

func runSubmit(ctx context.Context, submit SubmitFunc, values Values) (err error) {
	if submit == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSubmitPanic, r)
		}
	}()
	return submit(ctx, values)
}
