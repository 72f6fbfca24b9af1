package recommend

// recommendRequest is the POST /recommend body. Budget and district are
// accepted for compatibility with shop-ranking clients but unused here.
type recommendRequest struct {
	Text     string `json:"text"`
	Budget   string `json:"budget"`
	District string `json:"district"`
}

type recommendResponse struct {
	Component         string          `json:"component"`
	Confidence        float64         `json:"confidence"`
	Source            string          `json:"source"`
	ConfidenceTier    string          `json:"confidence_tier"`
	AskFeedback       bool            `json:"ask_feedback"`
	Alternatives      []Candidate     `json:"alternatives"`
	GroupedByCategory []CategoryGroup `json:"grouped_by_category"`
	Definition        string          `json:"definition"`
	WhyUseful         string          `json:"why_useful"`
	FixingTips        []string        `json:"fixing_tips"`
}

func toResponse(res Result) recommendResponse {
	return recommendResponse{
		Component:         res.Component,
		Confidence:        res.Confidence,
		Source:            res.Source,
		ConfidenceTier:    res.Tier,
		AskFeedback:       res.AskFeedback,
		Alternatives:      res.Alternatives,
		GroupedByCategory: res.GroupedByCategory,
		Definition:        res.Definition,
		WhyUseful:         res.WhyUseful,
		FixingTips:        res.FixingTips,
	}
}
