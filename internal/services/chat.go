package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/repos"
	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

const chatContextLimit = 3
const chatHistoryWindow = 6

type ChatResult struct {
	Success            bool              `json:"success"`
	Response           string            `json:"response,omitempty"`
	Error              string            `json:"error,omitempty"`
	RelevantActivities []*types.Activity `json:"relevant_activities"`
	ConversationID     string            `json:"conversation_id,omitempty"`
}

type BreakdownResult struct {
	Success   bool            `json:"success"`
	Activity  *types.Activity `json:"activity,omitempty"`
	Breakdown string          `json:"breakdown,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// ChatService answers free-form enrichment questions. Replies come from
// an ordered chain of strategies (remote coach, local completion, static
// apology); each failure is absorbed and the next strategy runs, so
// Respond never errors.
type ChatService interface {
	Respond(ctx context.Context, message string, history []ChatMessage, profile types.DogProfile) ChatResult
	ActivityBreakdown(ctx context.Context, activityName string) BreakdownResult
}

type chatService struct {
	db           *gorm.DB
	log          *logger.Logger
	activityRepo repos.ActivityRepo
	openaiClient OpenAIClient
	coachClient  CoachClient
}

func NewChatService(db *gorm.DB, log *logger.Logger, activityRepo repos.ActivityRepo, openaiClient OpenAIClient, coachClient CoachClient) ChatService {
	serviceLog := log.With("service", "ChatService")
	return &chatService{
		db:           db,
		log:          serviceLog,
		activityRepo: activityRepo,
		openaiClient: openaiClient,
		coachClient:  coachClient,
	}
}

type replyStrategy struct {
	name string
	run  func(ctx context.Context) (string, error)
}

func (cs *chatService) Respond(ctx context.Context, message string, history []ChatMessage, profile types.DogProfile) ChatResult {
	relevant, err := cs.relevantActivities(ctx, message, chatContextLimit)
	if err != nil {
		cs.log.Warn("Activity retrieval failed, continuing without context", "error", err)
		relevant = nil
	}

	strategies := make([]replyStrategy, 0, 2)
	if cs.coachClient != nil && cs.coachClient.Enabled() {
		strategies = append(strategies, replyStrategy{
			name: "coach",
			run: func(ctx context.Context) (string, error) {
				return cs.coachClient.CoachAdvice(ctx, message, profile, nil)
			},
		})
	}
	if cs.openaiClient != nil {
		strategies = append(strategies, replyStrategy{
			name: "local",
			run: func(ctx context.Context) (string, error) {
				return cs.localReply(ctx, message, history, relevant)
			},
		})
	}

	topActivities := relevant
	if len(topActivities) > 2 {
		topActivities = topActivities[:2]
	}

	for _, strategy := range strategies {
		reply, err := strategy.run(ctx)
		if err != nil {
			cs.log.Warn("Chat strategy failed, trying next tier", "strategy", strategy.name, "error", err)
			continue
		}
		return ChatResult{
			Success:            true,
			Response:           reply,
			RelevantActivities: topActivities,
			ConversationID:     newConversationID(),
		}
	}

	return ChatResult{
		Success:            false,
		Error:              "Sorry, I'm having trouble right now. Please try again.",
		RelevantActivities: topActivities,
	}
}

func (cs *chatService) localReply(ctx context.Context, message string, history []ChatMessage, relevant []*types.Activity) (string, error) {
	messages := []ChatMessage{{Role: "system", Content: chatSystemPrompt(relevant)}}
	if len(history) > chatHistoryWindow {
		history = history[len(history)-chatHistoryWindow:]
	}
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: "user", Content: message})
	return cs.openaiClient.Chat(ctx, messages, 800, 0.7)
}

func (cs *chatService) relevantActivities(ctx context.Context, message string, limit int) ([]*types.Activity, error) {
	keywords := ExtractKeywords(message)
	return cs.activityRepo.SearchKeywords(ctx, nil, keywords, limit)
}

// ExtractKeywords scans the message for fixed cues and collects the
// matching tag buckets: age, behavior, activity type, safety.
func ExtractKeywords(message string) []string {
	lower := strings.ToLower(message)
	contains := func(cues ...string) bool {
		for _, cue := range cues {
			if strings.Contains(lower, cue) {
				return true
			}
		}
		return false
	}

	var keywords []string
	if contains("puppy", "young", "4 month", "months old") {
		keywords = append(keywords, "puppy")
	}
	if contains("senior", "old", "elderly") {
		keywords = append(keywords, "senior")
	}

	if contains("swallow", "eats everything", "gulps") {
		keywords = append(keywords, "safe")
	}
	if contains("destructive", "chews everything") {
		keywords = append(keywords, "chew")
	}
	if contains("anxious", "stressed", "calm") {
		keywords = append(keywords, "calming")
	}

	if contains("mental", "brain", "puzzle") {
		keywords = append(keywords, "mental")
	}
	if contains("physical", "exercise", "active") {
		keywords = append(keywords, "physical")
	}
	if contains("social", "bonding") {
		keywords = append(keywords, "social")
	}
	if contains("passive", "quiet", "calm") {
		keywords = append(keywords, "passive")
	}

	if contains("safe", "no bones", "cant have") {
		keywords = append(keywords, "safe")
	}

	return keywords
}

func chatSystemPrompt(relevant []*types.Activity) string {
	var contextBuilder strings.Builder
	if len(relevant) > 0 {
		contextBuilder.WriteString("Relevant activities from our database:\n")
		for _, activity := range relevant {
			fmt.Fprintf(&contextBuilder, "- %s (%s): %s\n", activity.Name, activity.Category, activity.Description)
			materials := []string(activity.Materials)
			if len(materials) > 3 {
				materials = materials[:3]
			}
			fmt.Fprintf(&contextBuilder, "  Materials: %s\n", strings.Join(materials, ", "))
			fmt.Fprintf(&contextBuilder, "  Instructions: %d steps\n", len(activity.Instructions))
			if activity.SafetyNotes != "" {
				notes := activity.SafetyNotes
				if len(notes) > 100 {
					notes = notes[:100]
				}
				fmt.Fprintf(&contextBuilder, "  Safety: %s...\n", notes)
			}
			contextBuilder.WriteString("\n")
		}
	}

	return fmt.Sprintf(`You are an expert dog enrichment specialist and certified trainer. Your job is to help dog owners with enrichment activities and training advice.

CORE PRINCIPLES:
1. SAFETY FIRST: Always prioritize dog safety and well-being
2. BREAK DOWN COMPLEX BEHAVIORS: Explain things in simple, step-by-step terms
3. PROVIDE CRITERIA: Give clear success criteria for each step before moving forward
4. PERSONALIZE: Tailor advice to the specific dog's age, size, and situation
5. BE PRACTICAL: Suggest realistic activities with common household items

RESPONSE FORMAT:
- Start with empathy and understanding
- Break activities into micro-steps with clear criteria
- Provide 2-3 specific activity recommendations
- Include safety considerations
- End with encouragement and next steps

SPECIAL CONSIDERATIONS:
- For puppies under 6 months: Focus on safe, size-appropriate activities
- For dogs who swallow everything: Emphasize supervised activities and safe materials
- For anxious dogs: Start with calming, low-pressure activities
- Always mention when to move to the next step

AVAILABLE ACTIVITIES CONTEXT:
%s

Remember: You're helping real dog owners with real challenges. Be encouraging, practical, and safety-focused.`, contextBuilder.String())
}

func (cs *chatService) ActivityBreakdown(ctx context.Context, activityName string) BreakdownResult {
	activity, err := cs.activityRepo.GetByName(ctx, nil, activityName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BreakdownResult{
				Success: false,
				Error:   fmt.Sprintf("Activity '%s' not found in our database.", activityName),
			}
		}
		return BreakdownResult{
			Success: false,
			Error:   fmt.Sprintf("Error loading activity: %s", err),
		}
	}

	if cs.openaiClient == nil {
		return BreakdownResult{
			Success:  false,
			Error:    "Breakdown generation is not available right now.",
			Activity: activity,
		}
	}

	prompt := fmt.Sprintf(`Break down this dog enrichment activity into micro-steps with clear success criteria:

Activity: %s (%s)
Description: %s
Materials: %s
Instructions: %s
Safety: %s

Please provide:
1. PREPARATION STEPS: What to set up before starting
2. INTRODUCTION PHASE: How to introduce this to the dog
3. STEP-BY-STEP BREAKDOWN: Each instruction broken into micro-steps
4. SUCCESS CRITERIA: What to look for before moving to the next step
5. TROUBLESHOOTING: Common issues and solutions
6. PROGRESSION: How to make it easier or harder

Format as clear, numbered steps that a beginner could follow.`,
		activity.Name, activity.Category, activity.Description,
		strings.Join(activity.Materials, ", "),
		strings.Join(activity.Instructions, ". "),
		activity.SafetyNotes)

	breakdown, err := cs.openaiClient.Chat(ctx, []ChatMessage{
		{Role: "system", Content: "You are a dog training expert. Break down activities into the simplest possible steps with clear success criteria."},
		{Role: "user", Content: prompt},
	}, 1000, 0.6)
	if err != nil {
		return BreakdownResult{
			Success:  false,
			Error:    fmt.Sprintf("Error generating breakdown: %s", err),
			Activity: activity,
		}
	}

	return BreakdownResult{
		Success:   true,
		Activity:  activity,
		Breakdown: breakdown,
	}
}

func newConversationID() string {
	return "conv_" + uuid.NewString()
}
