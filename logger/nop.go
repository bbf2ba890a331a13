package logger

type nopLogger struct{}

func (n *nopLogger) Resolved() Resolved { return nil }

func (n *nopLogger) Fallback() Fallback { return nil }

func (n *nopLogger) Log() Log { return nil }
