package data

import (
	"context"
	"log/slog"
)

// termLogValuer defers rendering a term until a record is actually written
type termLogValuer struct{ Term }
type sortLogValuer struct{ Sort }

func (l termLogValuer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("str", l.Term.String()),
		slog.Uint64("id", uint64(l.ID())),
		slog.String("sort", l.Term.Sort().String()),
	)
}
func (l sortLogValuer) LogValue() slog.Value { return slog.StringValue(l.Sort.String()) }

// SlogHandler wraps underlying so that Term and Sort attributes
// are rendered lazily
func SlogHandler(underlying slog.Handler) slog.Handler {
	return &termLogHandler{underlying: underlying}
}

type termLogHandler struct {
	underlying slog.Handler
}

func wrapAttr(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindAny {
		return attr
	}
	switch value := attr.Value.Any().(type) {
	case Term:
		attr.Value = slog.AnyValue(termLogValuer{value})
	case Sort:
		attr.Value = slog.AnyValue(sortLogValuer{value})
	}
	return attr
}

func (l *termLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *termLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		newRecord.AddAttrs(wrapAttr(attr))
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *termLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		wrapped[i] = wrapAttr(attr)
	}
	return SlogHandler(l.underlying.WithAttrs(wrapped))
}

func (l *termLogHandler) WithGroup(name string) slog.Handler {
	return SlogHandler(l.underlying.WithGroup(name))
}
