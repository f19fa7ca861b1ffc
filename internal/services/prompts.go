package services

import (
	"strings"

	"aarav/internal/models/trip_models"
	"aarav/internal/repositories"
)

// systemPrompt sets the persona. Every LLM call starts from it.
const systemPrompt = `You are Aarav, a local guide who has lived in the Kathmandu Valley his whole life.
You speak calmly and concretely, like someone walking beside the traveler, never like a brochure.
You only guide within the Kathmandu Valley: Kathmandu, Patan, Bhaktapur, and the nearby hills.
You never invent facts. When grounding notes are provided, stay inside them.
You give realistic price ranges, never exact prices, because prices here change by season and choice.
Keep replies short: two to four sentences, warm but not gushing.`

// introFallback is the greeting used when the LLM is unavailable.
const introFallback = `Namaste — I'm Aarav. Kathmandu Valley can feel like a small maze at first, but it opens up quickly once you know where to look.
Would you like me to help you plan your days here?`

// otherCityReply redirects travelers asking about places outside the valley.
const otherCityReply = `I know Kathmandu Valley best — Kathmandu, Patan, Bhaktapur, and the nearby hills.
Places beyond that I'd rather not guess about. Shall we keep exploring the valley?`

// hotelQuestion is asked once the profile is complete.
const hotelQuestion = `One more practical thing — where are you staying, or where do you plan to stay? Even a rough area like Thamel or Boudha helps me shape the days around you.`

// fallbackLines are the canned replies for conversational side channels.
var fallbackLines = map[string]string{
	"vague": "That's alright — Kathmandu doesn't need everything decided upfront.\nLet's keep this flexible for now.",
	"too_broad": "Kathmandu has many layers, and seeing everything at once can be overwhelming.\nLet me start with a couple of places that usually leave the strongest impression.",
	"skips_info": "No problem — we can leave that open for now.\nI'll plan around what I know and we can adjust as we go.",
	"changes_mind": "That's completely fine. Plans here are meant to shift — let me adjust the direction.",
	"exact_prices": "I'll keep the numbers realistic, but I won't lock them in.\nPrices here change by season and choice, and I'd rather not mislead you.",
	"off_topic": "That's an interesting question.\nFor now, let me keep us focused on Kathmandu so I can guide you properly.",
	"silent": "Take your time — there's no rush here.\nWhenever you're ready, tell me a little about your trip and we'll go from there.",
	"immediate_plan": "Happy to jump straight in. Let me just ask a couple of quick things first so the plan actually fits you.",
}

// profileQuestions are asked in fixed order; each doubles as the
// deterministic reply when the LLM cannot rephrase it.
var profileQuestions = map[string]string{
	FieldTimeDays:    "Before I suggest a full flow, how many days do you have in the Kathmandu Valley? I ask because the pace changes a lot depending on time.",
	FieldGroup:       "Are you traveling solo, as a couple, or with a group? The rhythm of a day changes with company.",
	FieldBudget:      "Do you have a rough budget in mind for the trip? A loose number is fine — or just say you're not sure yet.",
	FieldComfort:     "How do you like to travel — keeping it budget and simple, mid-range, or leaning comfortable? There's no wrong answer here.",
	FieldPreferences: "What draws you most — history, temples, food, markets, quiet corners, viewpoints? A word or two is enough.",
}

// suggestedReplies offers quick-tap options matched to where the
// conversation stands. Capped at six.
func suggestedReplies(t *trip_models.TripState, places repositories.PlaceRepository) []string {
	const maxSuggestions = 6

	if t.Permission == trip_models.PermissionUnknown || t.Stage == trip_models.StageDayConfirm {
		return []string{"Yes", "No"}
	}

	var out []string
	switch {
	case t.Hotel == nil:
		out = []string{
			"I'm staying in Thamel",
			"I'm staying near Boudha",
			"I'm staying near Durbar Square",
		}
	case len(t.SelectedPlaces) == 0:
		for _, p := range places.List() {
			out = append(out, "Tell me about "+p.Name)
			if len(out) == 5 {
				break
			}
		}
	default:
		out = []string{
			"Build a simple route for me",
			"Add a calm place for a break",
			"I prefer temples and history",
		}
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// groundedUserPrompt wraps the traveler message with retrieval context.
func groundedUserPrompt(message, contextText string) string {
	if contextText == "" {
		return message
	}
	var sb strings.Builder
	sb.WriteString("Grounding notes:\n")
	sb.WriteString(contextText)
	sb.WriteString("\n\nTraveler: ")
	sb.WriteString(message)
	return sb.String()
}
