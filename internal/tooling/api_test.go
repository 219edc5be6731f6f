package tooling

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_OpenCachesDocument(t *testing.T) {
	api := NewAPI(DefaultConfig())

	doc := api.Open("file:///a.decl", "const int x = 5;")
	assert.Equal(t, 1, doc.Version)
	assert.Empty(t, doc.Diagnostics)

	cached, ok := api.Get("file:///a.decl")
	require.True(t, ok)
	assert.Equal(t, doc, cached)
}

func TestAPI_UpdateBumpsVersion(t *testing.T) {
	api := NewAPI(DefaultConfig())

	api.Open("file:///a.decl", "const int x = 5")
	doc := api.Update("file:///a.decl", "const int x = 5;")

	assert.Equal(t, 2, doc.Version)
	assert.Empty(t, doc.Diagnostics)
}

func TestAPI_UpdateWithoutOpenStartsAtVersionOne(t *testing.T) {
	api := NewAPI(DefaultConfig())
	doc := api.Update("file:///b.decl", "const int y = 1;")
	assert.Equal(t, 1, doc.Version)
}

func TestAPI_CloseEvictsDocument(t *testing.T) {
	api := NewAPI(DefaultConfig())
	api.Open("file:///a.decl", "const int x = 5;")
	api.Close("file:///a.decl")

	_, ok := api.Get("file:///a.decl")
	assert.False(t, ok)
	assert.Equal(t, 0, api.OpenDocumentCount())
}

func TestAPI_DiagnosticsSurfaceRepairs(t *testing.T) {
	api := NewAPI(DefaultConfig())
	doc := api.Open("file:///a.decl", "const int z = 7")

	require.Len(t, doc.Diagnostics, 1)
	assert.Equal(t, "Insert missing token: ';'", doc.Diagnostics[0].Message)
}

func TestAPI_ConcurrentAccessIsSafe(t *testing.T) {
	api := NewAPI(DefaultConfig())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			api.Open("file:///concurrent.decl", "const int x = 5;")
			api.Get("file:///concurrent.decl")
		}(i)
	}
	wg.Wait()

	_, ok := api.Get("file:///concurrent.decl")
	assert.True(t, ok)
}
