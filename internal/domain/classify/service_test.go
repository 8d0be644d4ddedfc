package classify

import (
	"sync"
	"testing"

	"github.com/phrazzld/bfhl-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceWithParams_NilFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	svc := NewServiceWithParams(nil)

	assert.Equal(t, *NewDefaultParams(), svc.Params())
}

func TestService_Classify(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	result := svc.Classify([]any{"a", "b", "c"})
	require.True(t, result.IsSuccess)
	assert.Equal(t, "CbA", result.ConcatString)

	failed := svc.Classify("not-an-array")
	assert.False(t, failed.IsSuccess)
	assert.Equal(t, domain.DataNotArrayMessage, failed.ErrorMessage)
	assert.Equal(t, "0", failed.Sum)
	assert.Empty(t, failed.ConcatString)
}

func TestService_ClassifyConcurrent(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	data := []any{"a", "1", "334", "4", "R", "$"}

	var wg sync.WaitGroup
	results := make([]*domain.ClassificationResult, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Classify(data)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "339", r.Sum)
		assert.Equal(t, "Ra", r.ConcatString)
	}
}
