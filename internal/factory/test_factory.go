package factory

import (
	"time"

	"cosmicstandoff/internal/dependencies/mocks"
	"cosmicstandoff/internal/services/strategy"
	"cosmicstandoff/internal/storage/memory"
	"cosmicstandoff/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and the given Alien strategy.
func NewTestApp(strategyName string) (*TestApp, error) {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	strat, err := strategy.New(strategyName, mockRandom)
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App: &App{
			Store:    memory.New(),
			Strategy: strat,
			Clock:    mockClock,
			Random:   mockRandom,
			Logger:   testutil.NopLogger(),
		},
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}, nil
}
