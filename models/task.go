package models

import "time"

type Task struct {
	ID            int64
	OwnerID       int64
	OwnerUsername string
	Created       time.Time
	Modified      time.Time
	Title         string
	Desc          string
	Due           *time.Time
	LineID        int64
}

type TaskInput struct {
	Title *string
	Desc  *string
	// DueSet distingue "due": null (limpar) de um payload sem o campo.
	DueSet bool
	Due    *time.Time
	LineID *int64
}

func BindTaskInput(p Payload, partial bool) (TaskInput, error) {
	errs := ValidationErrors{}
	in := TaskInput{
		Title:  p.title(errs, partial),
		Desc:   p.String("desc", errs, false, true, 0),
		LineID: p.Int64("line", errs, !partial),
	}
	in.Due, in.DueSet = p.Time("due", errs, false, true)
	return in, errs.OrNil()
}
