package models

import "time"

const (
	IssueDateLayout = "2006-01-02"
	DisplayLayout   = "January 2, 2006"
)

type Status string

const StatusVerified Status = "verified"

// 검증 대상 문서 (id 형식: BFT + 숫자 5자리)
type Record struct {
	ID            string `json:"id"`
	SubjectName   string `json:"subject_name"`
	Organization  string `json:"organization"`
	Role          string `json:"role"`
	IssueDate     string `json:"issue_date"`
	DurationLabel string `json:"duration_label"`
	Status        Status `json:"status"`
	Remark        string `json:"remark"`
}

// 결과 화면에 표시되는 필드
type Display struct {
	ID                 string `json:"id"`
	SubjectName        string `json:"subject_name"`
	IssueDate          string `json:"issue_date"`
	IssueDateFormatted string `json:"issue_date_formatted"`
	Role               string `json:"role"`
	DurationLabel      string `json:"duration_label"`
	Remark             string `json:"remark"`
	Status             Status `json:"status"`
}

func (r Record) Display() Display {
	return Display{
		ID:                 r.ID,
		SubjectName:        r.SubjectName,
		IssueDate:          r.IssueDate,
		IssueDateFormatted: FormatDate(r.IssueDate),
		Role:               r.Role,
		DurationLabel:      r.DurationLabel,
		Remark:             r.Remark,
		Status:             r.Status,
	}
}

// FormatDate renders an ISO date as "January 15, 2024". Unparseable input is
// returned unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse(IssueDateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(DisplayLayout)
}
