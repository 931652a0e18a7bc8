package models

import "time"

type Source string

const (
	SourceForm Source = "form"
	SourceLink Source = "link"
	SourceWS   Source = "ws"
)

type Outcome string

const (
	OutcomeVerified      Outcome = "verified"
	OutcomeNotFound      Outcome = "not_found"
	OutcomeEmpty         Outcome = "empty"
	OutcomeInvalidFormat Outcome = "invalid_format"
	OutcomeCanceled      Outcome = "canceled"
	OutcomeError         Outcome = "error"
)

// 검증 시도 기록
type Attempt struct {
	ID          string    `json:"id"`
	DocumentID  string    `json:"document_id"`
	Source      Source    `json:"source"`
	Outcome     Outcome   `json:"outcome"`
	RequestedAt time.Time `json:"requested_at"`
	CompletedAt time.Time `json:"completed_at"`
}
