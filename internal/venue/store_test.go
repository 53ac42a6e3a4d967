package venue

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mauv0809/fighter-franchise/internal/api"
	"github.com/mauv0809/fighter-franchise/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		client := api.NewMockClient()
		res := NewStore(client, nil).Create(context.Background(), Venue{Capacity: 10, Image: "a.png"}, nil)
		assert.Equal(t, result.KindRejected, res.Kind())
		assert.Empty(t, client.PostCalls)
	})

	t.Run("requires an image", func(t *testing.T) {
		client := api.NewMockClient()
		res := NewStore(client, nil).Create(context.Background(), Venue{Name: "Garden", Capacity: 10}, nil)
		assert.Equal(t, "An image is required", res.Message())
		assert.Empty(t, client.PostCalls)
	})

	t.Run("rejects negative capacity", func(t *testing.T) {
		client := api.NewMockClient()
		res := NewStore(client, nil).Create(context.Background(), Venue{Name: "Garden", Capacity: -1, Image: "a.png"}, nil)
		assert.Equal(t, result.KindRejected, res.Kind())
	})

	t.Run("uploads to the venue category", func(t *testing.T) {
		client := api.NewMockClient()
		res := NewStore(client, nil).Create(context.Background(), Venue{Name: "Garden", Capacity: 20000},
			&api.Image{Name: "garden.jpg", Content: strings.NewReader("jpg")})
		require.True(t, res.Success(), res.Message())
		assert.Equal(t, []api.Category{api.CategoryVenue}, client.UploadImageCalls)
		assert.Equal(t, "mock.png", client.PostCalls[0].(Venue).Image)
	})
}

func TestUpdate_WithoutImageOmitsField(t *testing.T) {
	client := api.NewMockClient()
	store := NewStore(client, nil)

	res := store.Update(context.Background(), Venue{ID: 2, Name: "Spectrum", Capacity: 18000}, nil)

	require.True(t, res.Success(), res.Message())
	assert.Empty(t, client.UploadImageCalls)
	body, err := json.Marshal(client.PutCalls[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"name":"Spectrum","capacity":18000}`, string(body))
}

func TestSearchByName_NotFound(t *testing.T) {
	client := api.NewMockClient()
	store := NewStore(client, nil)

	res := store.SearchByName(context.Background(), "nowhere")

	assert.Equal(t, result.KindEmpty, res.Kind())
	assert.Empty(t, store.Snapshot().ErrorMessage)
	assert.True(t, store.Snapshot().SearchActive)
}
