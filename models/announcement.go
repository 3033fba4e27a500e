package models

import "time"

type Announcement struct {
	ID            int64
	OwnerID       int64
	OwnerUsername string
	Created       time.Time
	Modified      time.Time
	Title         string
	Desc          string
	LineID        int64
}

type AnnouncementInput struct {
	Title  *string
	Desc   *string
	LineID *int64
}

func BindAnnouncementInput(p Payload, partial bool) (AnnouncementInput, error) {
	errs := ValidationErrors{}
	in := AnnouncementInput{
		Title:  p.title(errs, partial),
		Desc:   p.String("desc", errs, false, true, 0),
		LineID: p.Int64("line", errs, !partial),
	}
	return in, errs.OrNil()
}
