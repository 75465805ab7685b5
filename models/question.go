package models

import "time"

type Question struct {
	ID string `json:"question_id"`
	QuestionCreated time.Time `json:"created_timestamp"`
	QuestionUpdated time.Time `json:"updated_timestamp"`
	User User `gorm:"ForeignKey:ID;AssociationForeignKey:UserID" json:"-"`
	UserID string `json:"user_id"`
	QuestionText string `json:"question_text"`
	// the question is only visible when pub_date <= now
	PubDate time.Time `json:"pub_date"`
}

// WasPublishedRecently reports whether the question was published within
// the last day. A question with a pub_date in the future is not recent.
func (q *Question) WasPublishedRecently() bool {
	now := time.Now()
	return !q.PubDate.Before(now.Add(-24*time.Hour)) && !q.PubDate.After(now)
}
