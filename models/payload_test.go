package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func mustDecode(t *testing.T, body string) Payload {
	t.Helper()
	p, err := DecodePayload(strings.NewReader(body))
	if err != nil {
		t.Fatalf("DecodePayload(%q): %v", body, err)
	}
	return p
}

func validationErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error = %v, want ValidationErrors", err)
	}
	return verrs
}

func TestDecodePayload(t *testing.T) {
	if p := mustDecode(t, "  "); len(p) != 0 {
		t.Errorf("empty body decoded to %v", p)
	}

	for _, body := range []string{"[1,2]", "null", "{bad", `"title"`} {
		_, err := DecodePayload(strings.NewReader(body))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("DecodePayload(%q) error = %v, want *ParseError", body, err)
		}
	}
}

func TestBindLineInput(t *testing.T) {
	in, err := BindLineInput(mustDecode(t, `{"title": "Team Sync", "owner": "mallory"}`), false)
	if err != nil {
		t.Fatalf("BindLineInput: %v", err)
	}
	if in.Title == nil || *in.Title != "Team Sync" {
		t.Errorf("Title = %v", in.Title)
	}

	tests := []struct {
		name    string
		body    string
		partial bool
		want    ValidationErrors
	}{
		{"missing", `{}`, false, ValidationErrors{"title": {msgRequired}}},
		{"blank", `{"title": "   "}`, false, ValidationErrors{"title": {msgBlank}}},
		{"null", `{"title": null}`, true, ValidationErrors{"title": {msgNull}}},
		{"wrong type", `{"title": 12}`, false, ValidationErrors{"title": {"Not a valid string."}}},
		{"too long", `{"title": "` + strings.Repeat("x", TitleMaxLength+1) + `"}`, false,
			ValidationErrors{"title": {"Ensure this field has no more than 100 characters."}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BindLineInput(mustDecode(t, tt.body), tt.partial)
			if diff := cmp.Diff(tt.want, validationErrors(t, err)); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}

	in, err = BindLineInput(mustDecode(t, `{}`), true)
	if err != nil || in.Title != nil {
		t.Errorf("partial empty payload = %+v, %v", in, err)
	}
}

func TestStringFieldsAreTrimmed(t *testing.T) {
	in, err := BindAnnouncementInput(mustDecode(t, `{"title": "  Team Sync  ", "desc": "\tFriday\n", "line": 1}`), false)
	if err != nil {
		t.Fatalf("BindAnnouncementInput: %v", err)
	}
	if *in.Title != "Team Sync" || *in.Desc != "Friday" {
		t.Errorf("title = %q, desc = %q", *in.Title, *in.Desc)
	}

	// O limite de tamanho vale para o valor já aparado.
	padded := "  " + strings.Repeat("x", TitleMaxLength) + "  "
	in2, err := BindLineInput(mustDecode(t, `{"title": "`+padded+`"}`), false)
	if err != nil {
		t.Fatalf("BindLineInput: %v", err)
	}
	if got := len(*in2.Title); got != TitleMaxLength {
		t.Errorf("len(title) = %d, want %d", got, TitleMaxLength)
	}
}

func TestPayloadTimeFormats(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-02T09:00:00Z", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		{"2026-03-02T09:00:00.250+01:00", time.Date(2026, 3, 2, 8, 0, 0, 250000000, time.UTC)},
		{"2026-03-02T09:00Z", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		{"2026-03-02T09:00+02:00", time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)},
		{"2026-03-02T09:00-03:00", time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)},
		{"2026-03-02T09:00:30", time.Date(2026, 3, 2, 9, 0, 30, 0, time.UTC)},
		{"2026-03-02T09:00", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		{"2026-03-02 09:00:30Z", time.Date(2026, 3, 2, 9, 0, 30, 0, time.UTC)},
		{"2026-03-02 09:00+02:00", time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)},
		{"2026-03-02 09:00:30.5", time.Date(2026, 3, 2, 9, 0, 30, 500000000, time.UTC)},
		{"2026-03-02 09:00", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			errs := ValidationErrors{}
			got, present := mustDecode(t, `{"start": "`+tt.in+`"}`).Time("start", errs, true, false)
			if len(errs) != 0 {
				t.Fatalf("errors = %v", errs)
			}
			if !present || got == nil || !got.Equal(tt.want) {
				t.Errorf("Time(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"2026-03-02", "09:00", "2026-03-02T09:00+0200", "tomorrow"} {
		errs := ValidationErrors{}
		if got, _ := mustDecode(t, `{"start": "`+bad+`"}`).Time("start", errs, true, false); got != nil {
			t.Errorf("Time(%q) = %v, want rejection", bad, got)
		}
		if diff := cmp.Diff(ValidationErrors{"start": {msgTimeFormat}}, errs); diff != "" {
			t.Errorf("%q (-want +got):\n%s", bad, diff)
		}
	}
}

func TestBindAnnouncementInputLineReference(t *testing.T) {
	in, err := BindAnnouncementInput(mustDecode(t, `{"title": "t", "line": "7"}`), false)
	if err != nil {
		t.Fatalf("BindAnnouncementInput: %v", err)
	}
	if in.LineID == nil || *in.LineID != 7 {
		t.Errorf("LineID = %v, want 7", in.LineID)
	}
	if in.Desc != nil {
		t.Errorf("Desc = %v, want nil when absent", *in.Desc)
	}

	_, err = BindAnnouncementInput(mustDecode(t, `{"title": "t"}`), false)
	if diff := cmp.Diff(ValidationErrors{"line": {msgRequired}}, validationErrors(t, err)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	_, err = BindAnnouncementInput(mustDecode(t, `{"title": "t", "line": [1]}`), false)
	want := ValidationErrors{"line": {"Incorrect type. Expected pk value, received list."}}
	if diff := cmp.Diff(want, validationErrors(t, err)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	_, err = BindAnnouncementInput(mustDecode(t, `{"title": "t", "line": 1.5}`), false)
	want = ValidationErrors{"line": {"Incorrect type. Expected pk value, received float."}}
	if diff := cmp.Diff(want, validationErrors(t, err)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestBindEventInputTimes(t *testing.T) {
	in, err := BindEventInput(mustDecode(t,
		`{"title": "Sync", "desc": "", "start": "2026-03-01T10:00:00+02:00", "end": "2026-03-01T11:30", "line": 1}`), false)
	if err != nil {
		t.Fatalf("BindEventInput: %v", err)
	}
	if want := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC); !in.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", in.Start, want)
	}
	if want := time.Date(2026, 3, 1, 11, 30, 0, 0, time.UTC); !in.End.Equal(want) {
		t.Errorf("End = %v, want %v", in.End, want)
	}

	_, err = BindEventInput(mustDecode(t, `{"title": "Sync", "start": "tomorrow", "line": 1}`), false)
	want := ValidationErrors{
		"start": {msgTimeFormat},
		"end":   {msgRequired},
	}
	if diff := cmp.Diff(want, validationErrors(t, err)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestBindTaskInputDue(t *testing.T) {
	in, err := BindTaskInput(mustDecode(t, `{"due": null}`), true)
	if err != nil {
		t.Fatalf("BindTaskInput: %v", err)
	}
	if !in.DueSet || in.Due != nil {
		t.Errorf("null due: DueSet=%v Due=%v, want set and nil", in.DueSet, in.Due)
	}

	in, err = BindTaskInput(mustDecode(t, `{"title": "x"}`), true)
	if err != nil {
		t.Fatalf("BindTaskInput: %v", err)
	}
	if in.DueSet {
		t.Error("DueSet = true for payload without due")
	}

	in, err = BindTaskInput(mustDecode(t, `{"title": "x", "line": 2, "due": "2026-01-02T00:00:00Z"}`), false)
	if err != nil {
		t.Fatalf("BindTaskInput: %v", err)
	}
	if !in.DueSet || in.Due == nil || in.Due.Year() != 2026 {
		t.Errorf("due not parsed: %+v", in)
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{}
	if errs.OrNil() != nil {
		t.Fatal("empty ValidationErrors must be nil")
	}
	errs.Add("title", msgRequired)
	errs.Add("line", `Invalid pk "3" - object does not exist.`)
	got := errs.Error()
	want := `validation failed: line: Invalid pk "3" - object does not exist.; title: This field is required.`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
