package logger

import (
	"context"
)

type ctxKeyDetails struct{}

type ctxValue struct {
	Super    *ctxValue
	LogEntry logEntry
}

// ContextWith attaches logging details to the context,
// every entry logged with the returned context will carry them.
func ContextWith(ctx context.Context, lds ...LoggingDetail) context.Context {
	if len(lds) == 0 {
		return ctx
	}
	var v ctxValue
	if prev, ok := lookupValue(ctx); ok {
		v.Super = prev
	}
	v.LogEntry = make(logEntry)
	for _, ld := range lds {
		ld.addTo(v.LogEntry)
	}
	return context.WithValue(ctx, ctxKeyDetails{}, &v)
}

func getLoggingDetailsFromContext(ctx context.Context) logEntry {
	d := make(logEntry)
	if ctx == nil {
		return d
	}
	var chain []*ctxValue
	if v, ok := lookupValue(ctx); ok {
		for ; v != nil; v = v.Super {
			chain = append(chain, v)
		}
	}
	// outermost first, so inner details override
	for i := len(chain) - 1; 0 <= i; i-- {
		d.Merge(chain[i].LogEntry)
	}
	return d
}

func lookupValue(ctx context.Context) (*ctxValue, bool) {
	if ptr, ok := ctx.Value(ctxKeyDetails{}).(*ctxValue); ok {
		return ptr, true
	}
	return nil, false
}
