package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/co-script/models"
)

const (
	defaultMaxTokens    = 2048
	analyzeURLMaxTokens = 1024
)

var platformGuides = map[string]string{
	"youtube":   "Write for YouTube. Strong hook in first 5 seconds. Use pattern interrupts. Include retention bumps every 30-60 seconds.",
	"tiktok":    "Write for TikTok. Maximum 60 seconds. Hook must be immediate. Conversational, raw, authentic tone.",
	"instagram": "Write for Instagram Reels/Stories. Visual-first. Strong text overlay hooks. Under 90 seconds.",
	"linkedin":  "Write for LinkedIn. Professional but human. Lead with insight. Include a clear takeaway.",
	"twitter":   "Write for Twitter/X. Punchy threads. Each tweet must standalone. Hook tweet is everything.",
	"email":     "Write an email sequence. Subject line = hook. One idea per email. Clear CTA.",
}

var typeGuides = map[models.ScriptType]string{
	models.VideoScript: "Format as a video script with [HOOK], [BODY], and [CTA] sections. Include visual notes in brackets where helpful.",
	models.SocialMedia: "Write platform-optimized social copy. Include hashtag suggestions.",
	models.Blog:        "Write a blog post with SEO-friendly headers, intro, body sections, and conclusion.",
	models.AdCopy:      "Write ad copy with 3 headline variants, body copy, and CTA variants.",
	models.Email:       "Write email with subject line, preview text, body, and CTA button text.",
}

const scoreSystemPrompt = `You are an expert script analyst. Score the following script on a 0-100 scale and provide detailed feedback.

Return ONLY valid JSON in this exact format:
{
  "score": <number 0-100>,
  "breakdown": {
    "hook_strength": <number 0-100>,
    "clarity": <number 0-100>,
    "structure": <number 0-100>,
    "emotional_pull": <number 0-100>,
    "cta_power": <number 0-100>
  },
  "reasoning": "<2-3 paragraph analysis of strengths, weaknesses, and specific improvements>",
  "hooks": [
    {"type": "Curiosity Gap", "text": "<alternative hook>"},
    {"type": "Contrarian Take", "text": "<alternative hook>"},
    {"type": "Before/After", "text": "<alternative hook>"}
  ],
  "frameworks": [
    {"name": "<framework name>", "fit": <number 0-100>, "suggestion": "<how to apply it>"}
  ],
  "audience_analysis": "<analysis of how well this script connects with the target audience>"
}`

const hooksSystemPrompt = `You are an expert hook writer for short-form and long-form content. Write alternative opening hooks for the given script.

Return ONLY valid JSON in this exact format:
{
  "hooks": [
    {"type": "Curiosity Gap", "text": "<hook>"},
    {"type": "Contrarian Take", "text": "<hook>"},
    {"type": "Before/After", "text": "<hook>"},
    {"type": "Bold Claim", "text": "<hook>"},
    {"type": "Question", "text": "<hook>"}
  ]
}`

const rewriteSystemPrompt = `You are an expert script rewriter. Rewrite the given script based on the user's instruction.
Maintain the core message but improve based on the specific request.
Return ONLY the rewritten script. No meta-commentary.`

const analyzeURLSystemPrompt = `You are a content analyst. Analyze the given URL (a video, article, or social post) and extract insights for script creation.

Return ONLY valid JSON:
{
  "title": "<content title>",
  "hook_used": "<what hook technique was used>",
  "structure": "<framework/structure identified>",
  "key_takeaways": ["<takeaway 1>", "<takeaway 2>", "<takeaway 3>"],
  "audience": "<target audience>",
  "tone": "<tone used>",
  "suggestions": "<how to adapt this for the user's content>"
}`

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func scorePrompt(req models.ScoreRequest) models.CompletionRequest {
	prompt := fmt.Sprintf("Script type: %s\nTarget audience: %s\nObjective: %s\nHook: %s\n\nSCRIPT:\n%s",
		orDefault(string(req.ScriptType), string(models.VideoScript)),
		orDefault(req.Audience, "general"),
		orDefault(req.Objective, "engage and convert"),
		orDefault(req.Hook, "(none)"),
		req.Content,
	)

	return models.CompletionRequest{System: scoreSystemPrompt, Prompt: prompt, MaxTokens: defaultMaxTokens}
}

// generatePrompt composes the type guidance (video_script when unknown) with
// the platform guidance (none when unknown).
func generatePrompt(req models.GenerateRequest) models.CompletionRequest {
	typeGuide, ok := typeGuides[req.ScriptType]
	if !ok {
		typeGuide = typeGuides[models.VideoScript]
	}
	tone := orDefault(req.Tone, "conversational")

	system := fmt.Sprintf(`You are an elite content strategist and scriptwriter. Generate high-converting scripts.

%s
%s

Your scripts should be:
- Hook-first (grab attention in the first line)
- Emotionally resonant
- Clear and concise
- Action-oriented with strong CTAs
- Written in %s tone

Return ONLY the script content. No meta-commentary.`, typeGuide, platformGuides[strings.ToLower(req.Platform)], tone)

	hookLine := "Create a compelling hook."
	if strings.TrimSpace(req.Hook) != "" {
		hookLine = fmt.Sprintf("Start with or riff on this hook: \"%s\"", req.Hook)
	}

	prompt := fmt.Sprintf("Generate a %s for %s.\n\nTarget audience: %s\nObjective: %s\n%s\nTone: %s",
		orDefault(string(req.ScriptType), string(models.VideoScript)),
		orDefault(req.Platform, "youtube"),
		orDefault(req.Audience, "general audience"),
		orDefault(req.Objective, "engage and grow"),
		hookLine,
		tone,
	)

	return models.CompletionRequest{System: system, Prompt: prompt, MaxTokens: defaultMaxTokens}
}

func hooksPrompt(req models.HooksRequest) models.CompletionRequest {
	prompt := fmt.Sprintf("Script type: %s\nTarget audience: %s\nObjective: %s\n\nSCRIPT:\n%s",
		orDefault(string(req.ScriptType), string(models.VideoScript)),
		orDefault(req.Audience, "general"),
		orDefault(req.Objective, "engage and convert"),
		req.Content,
	)

	return models.CompletionRequest{System: hooksSystemPrompt, Prompt: prompt, MaxTokens: defaultMaxTokens}
}

func rewritePrompt(req models.RewriteRequest) models.CompletionRequest {
	prompt := fmt.Sprintf("INSTRUCTION: %s\nTONE: %s\n\nORIGINAL SCRIPT:\n%s",
		orDefault(req.Instruction, "Make it more engaging and concise"),
		orDefault(req.Tone, "conversational"),
		req.Content,
	)

	return models.CompletionRequest{System: rewriteSystemPrompt, Prompt: prompt, MaxTokens: defaultMaxTokens}
}

func analyzeURLPrompt(req models.AnalyzeURLRequest) models.CompletionRequest {
	return models.CompletionRequest{
		System:    analyzeURLSystemPrompt,
		Prompt:    "Analyze this content URL and extract scriptwriting insights: " + strings.TrimSpace(req.URL),
		MaxTokens: analyzeURLMaxTokens,
	}
}
