package realism

const (
	verdictDelusional = "Delusional (but we admire the confidence)"
	verdictOptimistic = "Optimistic but possible"
	verdictAchievable = "Actually achievable"
)

var responses = map[Tier][]Payload{
	TierDelusional: {
		{
			Verdict: verdictDelusional,
			Message: "Listen, we love the energy. Truly. But maybe start with 'remember to floss' and work your way up?",
			Advice:  "Reality check: Rome wasn't built in a day, and neither is whatever you're planning.",
		},
		{
			Verdict: verdictDelusional,
			Message: "That's... certainly a goal. Did a motivational Instagram post write this?",
			Advice:  "Pro tip: If your resolution needs a lottery win to succeed, it might need workshopping.",
		},
		{
			Verdict: verdictDelusional,
			Message: "Okay Tony Robbins, let's pump the brakes. This is giving 'peaked during vision board workshop' vibes.",
			Advice:  "Consider: What if we aimed for 'functional human' first?",
		},
	},
	TierOptimistic: {
		{
			Verdict: verdictOptimistic,
			Message: "This could actually happen! Will it? Well, that's between you and your future therapy bill.",
			Advice:  "You'll need discipline, accountability, and probably several existential crises. But sure, why not?",
		},
		{
			Verdict: verdictOptimistic,
			Message: "Not impossible. Just... improbable. Like finishing a project before the deadline.",
			Advice:  "Break this down into smaller steps, or you'll be repeating this same resolution next January.",
		},
		{
			Verdict: verdictOptimistic,
			Message: "Ambitious! You might actually pull this off if you can defeat your true enemy: yourself.",
			Advice:  "Set reminders. Like, so many reminders. And find an accountability partner who won't let you weasel out.",
		},
	},
	TierAchievable: {
		{
			Verdict: verdictAchievable,
			Message: "Look at you being all reasonable and realistic! You're either very wise or very tired.",
			Advice:  "This is genuinely doable. Don't overthink it. Just... actually do it this time?",
		},
		{
			Verdict: verdictAchievable,
			Message: "A resolution that doesn't require divine intervention? Revolutionary!",
			Advice:  "Start small, build consistency, and don't be weird about it if you miss a day.",
		},
		{
			Verdict: verdictAchievable,
			Message: "Finally, someone who understands that sustainable change doesn't need to be dramatic.",
			Advice:  "You've got this. Seriously. It's basically already done. Just... keep doing it for 365 days.",
		},
	},
}

// Responses returns a copy of the payloads for a tier, in table order.
// Unknown tiers return nil.
func Responses(t Tier) []Payload {
	src := responses[t]
	if src == nil {
		return nil
	}
	out := make([]Payload, len(src))
	copy(out, src)
	return out
}

// payloadAt returns the payload at index i for tier t.
// Out-of-range indexes clamp to the last entry.
func payloadAt(t Tier, i int) (Payload, int) {
	list := responses[t]
	if i >= len(list) {
		i = len(list) - 1
	}
	if i < 0 {
		i = 0
	}
	return list[i], i
}
