package models

// QuestionType selects how a survey question is answered.
type QuestionType string

const (
	QuestionText   QuestionType = "text"
	QuestionRating QuestionType = "rating"
	QuestionChoice QuestionType = "choice"
)

// ValidQuestionTypes lists every accepted QuestionType.
var ValidQuestionTypes = []QuestionType{QuestionText, QuestionRating, QuestionChoice}

// SurveyChoices are the options offered for choice questions.
var SurveyChoices = []string{"ほぼ毎日", "週に1回程度", "月に1回程度", "年に数回", "今回が初めて"}

// RatingScale is the range offered for rating questions, lowest first.
var RatingScale = []int{1, 2, 3, 4, 5}

type SurveyQuestion struct {
	ID   string       `json:"id" validate:"required"`
	Text string       `json:"text" validate:"required"`
	Type QuestionType `json:"type" validate:"required,oneof=text rating choice" enum:"text,rating,choice"`
}
