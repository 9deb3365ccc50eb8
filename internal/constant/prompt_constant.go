package constant

const (
	// FirstQuestion opens every interview; a turn carrying it starts a new run.
	FirstQuestion = "If anything were possible, what would your dream home look like?"

	InterviewTemperature = 0.7
	InterviewMaxTokens   = 150

	// INTERVIEW (one system message per turn, full history follows it)
	InterviewSystemPromptHeader = `You are a home design assistant conducting a structured interview. The user has made the following selections:`

	InterviewCurrentQuestionTemplate = `Current question: %s`

	InterviewReplyInstruction = `Please provide a brief, focused response (2-3 sentences) that acknowledges the user's answer and connects it to their design preferences. Keep it conversational and concise.`

	InterviewSelectionLineTemplate = `Question %s: %s, %s, %s`

	// PERSONA PROFILER
	PersonaProfilerSystemPrompt = `You are a design profiler with four jobs:
1. Generate an internal persona report for marketers.
   This includes:
   - aesthetic_style
   - emotional_tone (e.g. nostalgic: %, anti_trend: %, etc.)
   - behavioral_habit
   - target_ad_copy (trend_orientation, ad_resistance, tone)
   - packaged_for (brand types or platforms)
2. Generate a poetic, warm, and stylized persona copy for the user.
3. Output a structured interpretation of image-derived style tags as a readable description.
   Use natural language to explain:
   - Aesthetic Style (e.g. 'A blend of IKEA-style and functional family comfort')
   - Material & Texture (e.g. 'Soft fabrics, playful textiles, plastic and paper decor')
   - Lighting & Mood (e.g. 'Soft indoor lighting creating a lively and welcoming feel')
   - Room Typology (e.g. 'Child-friendly family room')
   - Emotional Imagery (e.g. 'Captures a sense of creativity and playful intimacy')
   - Persona cues (e.g. 'Someone who values order while embracing chaos in a loving way')
4. Add a short identity label describing the user's home archetype, such as 'gentle minimalist', 'romantic rebel', 'structured visionary'.

Return JSON only, in the following format:
{
  "internal_report": {
    "aesthetic_style": "...",
    "emotional_tone": "...",
    "behavioral_habit": "...",
    "target_ad_copy": {
      "trend_orientation": "...",
      "ad_resistance": "...",
      "tone": "..."
    },
    "packaged_for": "..."
  },
  "persona_copy": "...",
  "style_tags": {
    "aesthetic_style": "...",
    "material_texture": "...",
    "lighting_mood": "...",
    "room_typology": "...",
    "emotional_imagery": "...",
    "persona_cues": "..."
  },
  "home_archetype": "gentle minimalist"
}`

	PersonaProfilerUserTemplate = `Image-derived tags:
%s

User conversation summary:
%s`

	PersonaTemperature = 0.7
)
