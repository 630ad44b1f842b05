package rsvps

import (
	"bytes"
	"context"
	"encoding/csv"
	"regexp"
	"strings"
)

const submittedAtLayout = "2006-01-02 15:04:05"

var filenameSafe = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// ExportCSV renders the response log as a spreadsheet download. A UTF-8 BOM
// is prepended so Excel picks up the encoding. The custom-question column is
// included only when the event configured one.
func (s *Service) ExportCSV(ctx context.Context, inviteID string) (filename string, data []byte, err error) {
	result, err := s.Analytics(ctx, inviteID)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})
	w := csv.NewWriter(&buf)

	header := []string{"Name", "Email"}
	if result.Details.CustomRsvpQuestion != "" {
		header = append(header, result.Details.CustomRsvpQuestion)
	}
	header = append(header, "Submitted At")
	if err := w.Write(header); err != nil {
		return "", nil, err
	}

	for _, r := range result.Responses {
		row := []string{r.Name, r.Email}
		if result.Details.CustomRsvpQuestion != "" {
			row = append(row, r.CustomAnswer)
		}
		row = append(row, r.SubmittedAt.Format(submittedAtLayout))
		if err := w.Write(row); err != nil {
			return "", nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, err
	}

	name := result.Details.EventName
	if name == "" {
		name = "event"
	}
	name = strings.Trim(filenameSafe.ReplaceAllString(name, "_"), "_")
	if name == "" {
		name = "event"
	}
	return name + "_rsvp_responses.csv", buf.Bytes(), nil
}
