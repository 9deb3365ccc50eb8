// Package catalog loads the inspiration image descriptions and keeps their
// embeddings in a chromem-go collection.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"soulful-home-be/internal/entity"
)

// Image is one described inspiration photo.
type Image struct {
	Filename         string `json:"filename"`
	Description      string `json:"description"`
	AestheticStyle   string `json:"aesthetic_style"`
	MaterialTexture  string `json:"material_texture"`
	LightingMood     string `json:"lighting_mood"`
	RoomTypology     string `json:"room_typology"`
	EmotionalImagery string `json:"emotional_imagery"`
	PersonaCues      string `json:"persona_cues"`
}

// EmbeddingInput is the text embedded for the image.
func (img Image) EmbeddingInput() string {
	return fmt.Sprintf(
		"%s. Style: %s. Material: %s. Lighting: %s. Room type: %s. Emotion: %s. Persona: %s.",
		img.Description,
		img.AestheticStyle,
		img.MaterialTexture,
		img.LightingMood,
		img.RoomTypology,
		img.EmotionalImagery,
		img.PersonaCues,
	)
}

// Metadata is stored next to the embedding so search results can be
// rendered without going back to the catalog file.
func (img Image) Metadata() map[string]string {
	return map[string]string{
		"filename":    img.Filename,
		"description": img.Description,
	}
}

// field maps the canonical key and the hand-annotated export key
// ("Aesthetic Style": ["..."]) onto an Image field.
type field struct {
	canonical string
	legacy    string
	set       func(*Image, string)
}

var fields = []field{
	{"filename", "Filename", func(i *Image, v string) { i.Filename = v }},
	{"description", "Description", func(i *Image, v string) { i.Description = v }},
	{"aesthetic_style", "Aesthetic Style", func(i *Image, v string) { i.AestheticStyle = v }},
	{"material_texture", "Material & Texture", func(i *Image, v string) { i.MaterialTexture = v }},
	{"lighting_mood", "Lighting & Mood", func(i *Image, v string) { i.LightingMood = v }},
	{"room_typology", "Room Typology", func(i *Image, v string) { i.RoomTypology = v }},
	{"emotional_imagery", "Emotional Imagery", func(i *Image, v string) { i.EmotionalImagery = v }},
	{"persona_cues", "Persona cues", func(i *Image, v string) { i.PersonaCues = v }},
}

// Parse decodes a catalog document, accepting canonical and legacy keys.
// Legacy keys win when both are present; list values are joined with ", ".
func Parse(data []byte) ([]Image, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	images := make([]Image, 0, len(raw))
	for n, entry := range raw {
		var img Image
		for _, f := range fields {
			value, ok := entry[f.legacy]
			if !ok {
				value, ok = entry[f.canonical]
			}
			if !ok {
				continue
			}
			var text entity.FlexText
			if err := json.Unmarshal(value, &text); err != nil {
				return nil, fmt.Errorf("catalog entry %d: %s: %w", n, f.canonical, err)
			}
			f.set(&img, text.String())
		}
		if img.Filename == "" {
			return nil, fmt.Errorf("catalog entry %d has no filename", n)
		}
		images = append(images, img)
	}
	return images, nil
}

func Load(path string) ([]Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}
