package models

// Request/response payloads for the ML scoring service. Field names follow the
// service's JSON contract exactly.

type PredictMatchRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

type PredictMatchResponse struct {
	MatchScore      float64  `json:"match_score"`
	Confidence      float64  `json:"confidence"`
	KeywordsMatched []string `json:"keywords_matched"`
	Recommendation  string   `json:"recommendation"`
}

type ATSOptimizeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

type ATSOptimizeResponse struct {
	ATSScore               float64  `json:"ats_score"`
	KeywordMatchPercentage float64  `json:"keyword_match_percentage"`
	MissingKeywords        []string `json:"missing_keywords"`
	MatchedKeywords        []string `json:"matched_keywords"`
	Suggestions            []string `json:"suggestions"`
	TFIDFSimilarity        float64  `json:"tfidf_similarity"`
	ResumeKeywordCount     int      `json:"resume_keyword_count"`
	JobKeywordCount        int      `json:"job_keyword_count"`
}

type InterviewQuestion struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

type GenerateQuestionsRequest struct {
	JobDescription string `json:"job_description"`
	JobRole        string `json:"job_role,omitempty"`
	NumQuestions   int    `json:"num_questions,omitempty"`
}

type GenerateQuestionsResponse struct {
	Questions      []InterviewQuestion `json:"questions"`
	TotalQuestions int                 `json:"total_questions"`
}

type EvaluateAnswerRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

type EvaluateAnswerResponse struct {
	Score           float64  `json:"score"`
	OverallFeedback string   `json:"overall_feedback"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Sentiment       string   `json:"sentiment"`
	WordCount       int      `json:"word_count"`
	HasExample      bool     `json:"has_example"`
	HasResult       bool     `json:"has_result"`
}

type AnswerEvaluation struct {
	Score    float64 `json:"score"`
	Category string  `json:"category"`
}

type InterviewScoreRequest struct {
	Evaluations []AnswerEvaluation `json:"evaluations"`
}

type InterviewScoreResponse struct {
	OverallScore      float64            `json:"overall_score"`
	AverageScore      float64            `json:"average_score"`
	Grade             string             `json:"grade"`
	TotalQuestions    int                `json:"total_questions"`
	QuestionsAnswered int                `json:"questions_answered"`
	Summary           string             `json:"summary"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
}
