package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/crisvieira/satisfaction-server/config"
	"github.com/crisvieira/satisfaction-server/models"
)

const (
	maxCommentLen   = 500
	maxOtherTextLen = 50
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Contact holds the optional NPS contact block. Informational only;
// nothing beyond email shape is enforced.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	TaxID string `json:"tax_id"`
}

// Submission is the POST /api/responses body.
type Submission struct {
	Instrument string   `json:"instrument"`
	Score      *int     `json:"score"`
	ContextTag string   `json:"context_tag"`
	OtherText  string   `json:"other_text"`
	Comment    string   `json:"comment"`
	Contact    *Contact `json:"contact"`
}

// ValidSubmission is a submission that passed validation and is ready
// for classification and append. The store assigns id and timestamp.
type ValidSubmission struct {
	Instrument      models.Instrument
	Score           int
	Category        models.Category
	ContextTag      string
	ContextResolved bool
	Comment         string
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	ContactTaxID    string
}

// ValidateSubmission checks a proposed submission against the rules
// for its instrument. Pure: no side effects, no store access.
func ValidateSubmission(req Submission, catalog config.Catalog) (ValidSubmission, error) {
	var vs ValidSubmission

	instrument := models.Instrument(strings.ToLower(strings.TrimSpace(req.Instrument)))
	if !instrument.Valid() {
		return vs, NewValidationError(KindMissingContext, "instrument",
			fmt.Sprintf("instrument must be %q or %q", models.InstrumentNPS, models.InstrumentCSAT))
	}
	vs.Instrument = instrument

	if req.Score == nil {
		return vs, NewValidationError(KindMissingScore, "score", "score is required")
	}
	score := *req.Score
	switch instrument {
	case models.InstrumentNPS:
		if score < 0 || score > 10 {
			return vs, NewValidationError(KindScoreOutOfRange, "score", "NPS score must be between 0 and 10")
		}
	case models.InstrumentCSAT:
		if score < 1 || score > 5 {
			return vs, NewValidationError(KindScoreOutOfRange, "score", "CSAT rating must be between 1 and 5")
		}
	}
	vs.Score = score

	tag := strings.TrimSpace(req.ContextTag)
	vs.ContextResolved = true

	switch instrument {
	case models.InstrumentCSAT:
		switch {
		case tag == config.CSATContextOther:
			other := strings.TrimSpace(req.OtherText)
			if other == "" || len([]rune(other)) > maxOtherTextLen {
				return vs, NewValidationError(KindMissingContext, "other_text",
					"context \"other\" requires a description of up to 50 characters")
			}
			vs.ContextTag = other
		case catalog.KnownCSATContext(tag):
			vs.ContextTag = tag
		default:
			return vs, NewValidationError(KindMissingContext, "context_tag",
				"context must be one of the known service contexts")
		}
	case models.InstrumentNPS:
		// Branch selection may be validated upstream; a response with
		// an unknown branch is still worth recording, so flag rather
		// than reject.
		vs.ContextTag = tag
		if tag != "" && !catalog.KnownBranch(tag) {
			vs.ContextResolved = false
		}
	}

	if req.Contact != nil && instrument == models.InstrumentNPS {
		email := strings.TrimSpace(req.Contact.Email)
		if email != "" && !emailPattern.MatchString(email) {
			return vs, NewValidationError(KindInvalidEmail, "contact.email", "contact email is malformed")
		}
		vs.ContactName = strings.TrimSpace(req.Contact.Name)
		vs.ContactEmail = email
		vs.ContactPhone = strings.TrimSpace(req.Contact.Phone)
		vs.ContactTaxID = strings.TrimSpace(req.Contact.TaxID)
	}

	vs.Comment = truncateComment(req.Comment)

	return vs, nil
}

// truncateComment caps the comment at 500 characters. Over-length
// input is cut silently, never rejected.
func truncateComment(comment string) string {
	runes := []rune(strings.TrimSpace(comment))
	if len(runes) > maxCommentLen {
		runes = runes[:maxCommentLen]
	}
	return string(runes)
}
