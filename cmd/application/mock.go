package application

import (
	"github.com/rs/zerolog"

	"github.com/Marian1309/vercel-env/internal/cmd/globals"
	"github.com/Marian1309/vercel-env/internal/reconciler"
	"github.com/Marian1309/vercel-env/internal/store"
	"github.com/Marian1309/vercel-env/internal/vercel"
	"github.com/Marian1309/vercel-env/pkg/envs"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    ReconcilerFunc: func(...reconciler.Option) (reconciler.Reconciler, error) {
//	        return fakeReconciler, nil
//	    },
//	}
//	cmd := sync.NewCommand(mock)
//	// ... test command
type Mock struct {
	ClientFunc     func() (vercel.Client, error)
	StoreFunc      func() (*store.Local, error)
	ExclusionsFunc func() (*envs.Exclusions, error)
	ReconcilerFunc func(opts ...reconciler.Option) (reconciler.Reconciler, error)
	FlagsFunc      func() *globals.Flags
	LoggerFunc     func() *zerolog.Logger
	VersionFunc    func() string
	CommitFunc     func() string
	DateFunc       func() string
	BuiltByFunc    func() string
}

// Client returns a client using the mock function or nil.
func (m *Mock) Client() (vercel.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return nil, nil
}

// Store returns a store using the mock function or nil.
func (m *Mock) Store() (*store.Local, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc()
	}
	return nil, nil
}

// Exclusions returns exclusions using the mock function or the built-in set.
func (m *Mock) Exclusions() (*envs.Exclusions, error) {
	if m.ExclusionsFunc != nil {
		return m.ExclusionsFunc()
	}
	return envs.NewExclusions(nil, nil), nil
}

// Reconciler returns a reconciler using the mock function or nil.
func (m *Mock) Reconciler(opts ...reconciler.Option) (reconciler.Reconciler, error) {
	if m.ReconcilerFunc != nil {
		return m.ReconcilerFunc(opts...)
	}
	return nil, nil
}

// Flags returns flags using the mock function or an empty set.
func (m *Mock) Flags() *globals.Flags {
	if m.FlagsFunc != nil {
		return m.FlagsFunc()
	}
	return &globals.Flags{}
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
