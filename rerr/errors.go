package rerr

import (
	"fmt"
	"log/slog"
)

// Errors accumulates RewriteError-s, typically while validating
// a batch of declarations
type Errors struct {
	errs []RewriteError
}

func (r *Errors) With(err ...RewriteError) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) Merge(err *Errors) *Errors {
	if r == nil {
		return err
	}
	if err == nil || len(err.errs) == 0 {
		return r
	}
	return r.With(err.errs...)
}

func (r *Errors) Errors() []RewriteError {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool {
	if r == nil {
		return false
	}
	return len(r.errs) > 0
}

// Err returns nil when no errors were accumulated, so that
// callers can return it as a plain error
func (r *Errors) Err() error {
	if !r.HasError() {
		return nil
	}
	return r
}

func (r *Errors) Error() string {
	if !r.HasError() {
		return "no errors"
	}
	if len(r.errs) == 1 {
		return FormatWithCode(r.errs[0])
	}
	return fmt.Sprintf("%s (and %d more errors)", FormatWithCode(r.errs[0]), len(r.errs)-1)
}

func (r *Errors) LogValue() slog.Value {
	var vals []slog.Attr
	for i, v := range r.Errors() {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("e", i),
			Value: slog.GroupValue(
				slog.Attr{
					Key:   "msg",
					Value: slog.StringValue(FormatWithCode(v)),
				},
			),
		})
	}
	return slog.GroupValue(vals...)
}
