package rules

// BuiltinRules returns the default automation rule set. Priorities are
// spaced so deployments can interleave their own rules.
func BuiltinRules() []Rule {
	return []Rule{
		{
			ID:       "auto_advance_high_score",
			Name:     "Auto-advance high scorers",
			Priority: 10,
			When:     Condition{Kind: CondMinOverall, Threshold: 85},
			Then: []Action{
				{Kind: ActionAdvanceStage},
				{Kind: ActionSendNotification, Target: "recruiter"},
			},
		},
		{
			ID:       "auto_reject_low_score",
			Name:     "Auto-reject low scorers",
			Priority: 20,
			When:     Condition{Kind: CondMaxOverallBelow, Threshold: 50},
			Then: []Action{
				{Kind: ActionReject},
				{Kind: ActionSendMessage, Target: "rejection_email"},
			},
		},
		{
			ID:       "fast_track_strong_recommend",
			Name:     "Fast-track strong recommendations",
			Priority: 30,
			When:     Condition{Kind: CondRecommendation, Tier: "strong_recommend"},
			Then: []Action{
				{Kind: ActionAdvanceTwoStages},
				{Kind: ActionScheduleInterview, Target: "phone_interview"},
			},
		},
		{
			ID:       "flag_stale_candidate",
			Name:     "Flag stale candidates",
			Priority: 40,
			When:     Condition{Kind: CondDwellExceeds, Days: 7},
			Then: []Action{
				{Kind: ActionCreateTask, Target: "follow_up"},
			},
		},
		{
			ID:       "assign_specialist_recruiter",
			Name:     "Assign specialist recruiter",
			Priority: 50,
			When:     Condition{Kind: CondCategoryAtLeast, Threshold: 90},
			Then: []Action{
				{Kind: ActionAssignOwner, Target: "specialist_recruiter"},
			},
		},
	}
}
