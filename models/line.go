package models

import "time"

// Line agrupa os anúncios, eventos e tarefas de um usuário.
type Line struct {
	ID              int64
	OwnerID         int64
	OwnerUsername   string
	Created         time.Time
	Modified        time.Time
	Title           string
	AnnouncementIDs []int64
	EventIDs        []int64
	TaskIDs         []int64
}

type LineInput struct {
	Title *string
}

// BindLineInput valida o payload de uma Line. Com partial, só os campos
// presentes são verificados (PATCH).
func BindLineInput(p Payload, partial bool) (LineInput, error) {
	errs := ValidationErrors{}
	in := LineInput{
		Title: p.title(errs, partial),
	}
	return in, errs.OrNil()
}
