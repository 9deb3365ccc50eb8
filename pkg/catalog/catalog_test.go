package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CanonicalAndLegacyKeys(t *testing.T) {
	data := []byte(`[
		{
			"filename": "cabin.jpg",
			"description": "A timber cabin living room",
			"aesthetic_style": "rustic",
			"material_texture": "oak, wool",
			"lighting_mood": "firelight",
			"room_typology": "living room",
			"emotional_imagery": "cosy",
			"persona_cues": "homebody"
		},
		{
			"Filename": "loft.jpg",
			"Description": "Open plan loft",
			"Aesthetic Style": ["industrial", "modern"],
			"Material & Texture": ["concrete", "steel"],
			"Lighting & Mood": ["cold daylight"],
			"Room Typology": ["loft"],
			"Emotional Imagery": ["bold"],
			"Persona cues": ["urban creative"]
		}
	]`)

	images, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, images, 2)

	assert.Equal(t, Image{
		Filename:         "cabin.jpg",
		Description:      "A timber cabin living room",
		AestheticStyle:   "rustic",
		MaterialTexture:  "oak, wool",
		LightingMood:     "firelight",
		RoomTypology:     "living room",
		EmotionalImagery: "cosy",
		PersonaCues:      "homebody",
	}, images[0])

	assert.Equal(t, "loft.jpg", images[1].Filename)
	assert.Equal(t, "industrial, modern", images[1].AestheticStyle)
	assert.Equal(t, "concrete, steel", images[1].MaterialTexture)
	assert.Equal(t, "urban creative", images[1].PersonaCues)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(`{"filename": "x"}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`[{"description": "no name"}]`))
	assert.EqualError(t, err, "catalog entry 0 has no filename")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image_descriptions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"filename":"a.jpg","description":"d"}]`), 0o644))

	images, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, images, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestImage_EmbeddingInput(t *testing.T) {
	img := Image{
		Description:      "Sunny kitchen",
		AestheticStyle:   "farmhouse",
		MaterialTexture:  "tile",
		LightingMood:     "morning sun",
		RoomTypology:     "kitchen",
		EmotionalImagery: "cheerful",
		PersonaCues:      "host",
	}
	assert.Equal(t,
		"Sunny kitchen. Style: farmhouse. Material: tile. Lighting: morning sun. Room type: kitchen. Emotion: cheerful. Persona: host.",
		img.EmbeddingInput(),
	)
}

func noEmbed(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("embeddings must be precomputed")
}

func TestIndex_RankAll(t *testing.T) {
	ctx := context.Background()
	idx, err := NewIndex("", noEmbed)
	require.NoError(t, err)

	_, err = idx.RankAll(ctx, []float32{1, 0})
	assert.ErrorIs(t, err, ErrEmptyIndex)

	require.NoError(t, idx.Add(ctx, Image{Filename: "east.jpg", Description: "east"}, []float32{1, 0}))
	require.NoError(t, idx.Add(ctx, Image{Filename: "north.jpg", Description: "north"}, []float32{0, 1}))
	require.NoError(t, idx.Add(ctx, Image{Filename: "northeast.jpg", Description: "ne"}, []float32{0.7071, 0.7071}))
	require.NoError(t, idx.Add(ctx, Image{Filename: "east.jpg", Description: "east again"}, []float32{1, 0}))
	assert.Equal(t, 3, idx.Count())
	assert.True(t, idx.Has(ctx, "north.jpg"))
	assert.False(t, idx.Has(ctx, "south.jpg"))

	hits, err := idx.RankAll(ctx, []float32{1, 0})
	require.NoError(t, err)
	require.Len(t, hits, 3)
	assert.Equal(t, "east.jpg", hits[0].Filename)
	assert.Equal(t, "east again", hits[0].Description)
	assert.Equal(t, "northeast.jpg", hits[1].Filename)
	assert.Equal(t, "north.jpg", hits[2].Filename)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-3)
	assert.InDelta(t, 0.0, hits[2].Similarity, 1e-3)
}

func TestIndex_Persistent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	idx, err := NewIndex(dir, noEmbed)
	require.NoError(t, err)
	require.NoError(t, idx.Add(ctx, Image{Filename: "a.jpg", Description: "a"}, []float32{1, 0}))

	reopened, err := NewIndex(dir, noEmbed)
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Count())
}
