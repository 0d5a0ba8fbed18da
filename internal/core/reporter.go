package core

// TestReporter is the minimal interface impstub needs from test frameworks.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}

// logReporter is satisfied by reporters that can log without failing, like *testing.T.
type logReporter interface {
	Logf(format string, args ...any)
}
