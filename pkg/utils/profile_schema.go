package utils

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const (
	ProfileToolName      = "match_experiences_to_profile"
	ProfileSchemaVersion = "v1"
)

// ProfileToolParameters is the declared function schema the language-model
// collaborator fills in when it has gathered traveler preferences. The same
// definition backs both the OpenAI and the Gemini client.
func ProfileToolParameters() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"interests": {
				Type:        jsonschema.Array,
				Items:       &jsonschema.Definition{Type: jsonschema.String},
				Description: "User's top interests while visiting Dubai (e.g., 'culture', 'adventure', 'desert', 'shopping', 'luxury', 'nature'). These will be used to match experience tags.",
			},
			"budget_aed": {
				Type:        jsonschema.Integer,
				Description: "The total budget (in AED) that the user is willing to spend on experiences during their trip.",
			},
			"duration_days": {
				Type:        jsonschema.Number,
				Description: "Total number of days the user will spend in Dubai. Assumes 8 hours of experience time per day.",
			},
			"group_type": {
				Type:        jsonschema.String,
				Enum:        []string{"solo", "couple", "family", "friends", "group"},
				Description: "The type of group traveling. Used to filter experiences that are suitable for the travel party.",
			},
			"experience_type_preference": {
				Type:        jsonschema.Array,
				Items:       &jsonschema.Definition{Type: jsonschema.String},
				Description: "Optional. Categories or types of experiences the user prefers (e.g., 'museums', 'water activities', 'theme parks', 'historical tours').",
			},
			"strict_budget_match": {
				Type:        jsonschema.Boolean,
				Description: "Optional. If true, only experiences fully within budget are considered. If false or omitted, partial matches are scored but not excluded.",
			},
		},
		Required: []string{"interests", "budget_aed", "duration_days", "group_type"},
	}
}

func ProfileTool() openai.Tool {
	params := ProfileToolParameters()
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        ProfileToolName,
			Description: "Get personalized Dubai experience recommendations based on user's travel interests, budget, available time, and group preferences. Scores and ranks the best-suited experiences.",
			Parameters:  params,
		},
	}
}
