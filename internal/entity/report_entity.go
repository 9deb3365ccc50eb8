package entity

// UserReports is the persona produced by the profiler model.
type UserReports struct {
	InternalReport InternalReport `json:"internal_report"`
	PersonaCopy    string         `json:"persona_copy" validate:"required"`
	StyleTags      StyleTags      `json:"style_tags"`
	HomeArchetype  string         `json:"home_archetype" validate:"required"`
}

// InternalReport is the marketer-facing half of the persona, shown in the
// broker reveal panel.
type InternalReport struct {
	AestheticStyle  FlexText     `json:"aesthetic_style"`
	EmotionalTone   FlexText     `json:"emotional_tone"`
	BehavioralHabit FlexText     `json:"behavioral_habit"`
	TargetAdCopy    TargetAdCopy `json:"target_ad_copy"`
	PackagedFor     FlexText     `json:"packaged_for"`
}

type TargetAdCopy struct {
	TrendOrientation FlexText `json:"trend_orientation"`
	AdResistance     FlexText `json:"ad_resistance"`
	Tone             FlexText `json:"tone"`
}

type StyleTags struct {
	AestheticStyle   FlexText `json:"aesthetic_style"`
	MaterialTexture  FlexText `json:"material_texture"`
	LightingMood     FlexText `json:"lighting_mood"`
	RoomTypology     FlexText `json:"room_typology"`
	EmotionalImagery FlexText `json:"emotional_imagery"`
	PersonaCues      FlexText `json:"persona_cues"`
}

// Preferences lists the persona fields used as similarity queries, skipping
// blanks. Order: internal report, style tags, archetype.
func (r UserReports) Preferences() []string {
	candidates := []FlexText{
		r.InternalReport.AestheticStyle,
		r.InternalReport.EmotionalTone,
		r.InternalReport.BehavioralHabit,
		r.StyleTags.AestheticStyle,
		r.StyleTags.MaterialTexture,
		r.StyleTags.LightingMood,
		r.StyleTags.RoomTypology,
		r.StyleTags.EmotionalImagery,
		r.StyleTags.PersonaCues,
		FlexText(r.HomeArchetype),
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if s := c.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Match is one ranked catalog image.
type Match struct {
	ImagePath       string   `json:"image_path" validate:"required"`
	Description     string   `json:"description"`
	RelevanceScore  float64  `json:"relevance_score" validate:"gte=0,lte=1"`
	MatchingAspects []string `json:"matching_aspects"`
}

type SearchResults struct {
	Inspirations []Match `json:"inspirations" validate:"dive"`
	LeastMatches []Match `json:"least_matches" validate:"dive"`
}

// ReportResult is the persisted outcome of one completed quiz run.
type ReportResult struct {
	UserReports   UserReports   `json:"userReports"`
	SearchResults SearchResults `json:"searchResults"`
}
