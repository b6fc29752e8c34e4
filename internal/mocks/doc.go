// Package mocks provides centralized mock implementations for testing.
//
// Each mock has a function field per interface method. When the function is
// nil the mock returns its default values (and Err). Calls are counted so
// tests can assert a dependency was, or was not, reached.
//
//	import "github.com/phrazzld/cosmic-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    svc := &mocks.MockScientistService{
//	        GetScientistFn: func(ctx context.Context, id int64) (*domain.Scientist, error) {
//	            return nil, store.ErrScientistNotFound
//	        },
//	    }
//	    ...
//	}
package mocks
