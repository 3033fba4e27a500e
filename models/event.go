package models

import "time"

// Event é uma reunião dentro de uma Line.
type Event struct {
	ID            int64
	OwnerID       int64
	OwnerUsername string
	Created       time.Time
	Modified      time.Time
	Title         string
	Desc          string
	Start         time.Time
	End           time.Time
	LineID        int64
}

type EventInput struct {
	Title  *string
	Desc   *string
	Start  *time.Time
	End    *time.Time
	LineID *int64
}

func BindEventInput(p Payload, partial bool) (EventInput, error) {
	errs := ValidationErrors{}
	in := EventInput{
		Title:  p.title(errs, partial),
		Desc:   p.String("desc", errs, false, true, 0),
		LineID: p.Int64("line", errs, !partial),
	}
	in.Start, _ = p.Time("start", errs, !partial, false)
	in.End, _ = p.Time("end", errs, !partial, false)
	return in, errs.OrNil()
}
