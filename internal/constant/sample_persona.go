package constant

import "soulful-home-be/internal/entity"

// SamplePersona is a fixed persona for exercising the matcher.
func SamplePersona() entity.UserReports {
	return entity.UserReports{
		InternalReport: entity.InternalReport{
			AestheticStyle:  "minimalist with natural elements",
			EmotionalTone:   "calm and peaceful",
			BehavioralHabit: "enjoys reading and meditation",
			TargetAdCopy: entity.TargetAdCopy{
				TrendOrientation: "timeless over trendy",
				AdResistance:     "low",
				Tone:             "warm and inviting",
			},
			PackagedFor: "wellness and lifestyle brands",
		},
		PersonaCopy: "A gentle minimalist who finds peace in simplicity and nature",
		StyleTags: entity.StyleTags{
			AestheticStyle:   "minimalist with natural elements",
			MaterialTexture:  "wood and linen",
			LightingMood:     "soft and warm",
			RoomTypology:     "reading nook",
			EmotionalImagery: "peaceful and serene",
			PersonaCues:      "mindful and intentional",
		},
		HomeArchetype: "gentle minimalist",
	}
}
