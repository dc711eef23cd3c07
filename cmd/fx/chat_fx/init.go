package chat_fx

import (
	"go.uber.org/fx"

	"localexplorer/internal/api/controllers"
	"localexplorer/internal/catalog"
	"localexplorer/internal/services"
	mem "localexplorer/pkg/memcache"
	"localexplorer/pkg/utils"
)

var Module = fx.Provide(
	ProvideModerationGate,
	ProvideExtractorService,
	ProvideScoringService,
	ProvideRecommendationService,
	ProvideDialogueService,
	ProvideChatController)

func ProvideModerationGate(client utils.ModerationClientInterface) services.ModerationGateInterface {
	return services.NewModerationGate(client)
}

func ProvideExtractorService(client utils.ChatClientInterface) services.ExtractorServiceInterface {
	return services.NewExtractorService(client)
}

func ProvideScoringService() services.ScoringServiceInterface {
	return services.NewScoringService()
}

func ProvideRecommendationService() services.RecommendationServiceInterface {
	return services.NewRecommendationService()
}

func ProvideDialogueService(
	store *mem.SessionStore,
	cat *catalog.Catalog,
	gate services.ModerationGateInterface,
	extractor services.ExtractorServiceInterface,
	scorer services.ScoringServiceInterface,
	selector services.RecommendationServiceInterface,
) services.DialogueServiceInterface {
	return services.NewDialogueService(store, cat, gate, extractor, scorer, selector)
}

func ProvideChatController(dialogueService services.DialogueServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(dialogueService)
}
