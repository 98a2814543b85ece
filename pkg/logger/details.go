package logger

// LoggingDetail enriches a log entry with additional contextual detail.
type LoggingDetail interface {
	addTo(logEntry)
}

type logEntry map[string]any

func (le logEntry) Merge(oth logEntry) logEntry {
	for k, v := range oth {
		le[k] = v
	}
	return le
}

// Details is a set of key value pairs that can be added to a log entry as a single detail.
type Details map[string]any

func (ld Details) addTo(le logEntry) {
	for k, v := range ld {
		le[k] = v
	}
}

// Field creates a single key value pair based logging detail.
func Field(key string, value any) LoggingDetail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(le logEntry) {
	le[f.Key] = f.Value
}

// ErrField adds the error's message under the "error" key.
func ErrField(err error) LoggingDetail {
	if err == nil {
		return nullLoggingDetail{}
	}
	return Field("error", Details{"message": err.Error()})
}

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(logEntry) {}
