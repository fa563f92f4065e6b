package httpapi

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/campusmatch/internal/common"
	"github.com/dmitrijs2005/campusmatch/internal/server/interests"
	"github.com/dmitrijs2005/campusmatch/internal/server/matching"
	"github.com/dmitrijs2005/campusmatch/internal/server/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// registerRequest fields tagged required must be present; empty strings and
// an empty interest list are accepted.
type registerRequest struct {
	Name    *string `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"omitempty,email"`
	Faculty *string `json:"faculty" validate:"required"`
	// Visible defaults to true when omitted.
	Visible   *bool    `json:"visible"`
	Mission   *string  `json:"mission" validate:"required"`
	Interests []string `json:"interests" validate:"required"`
}

type registerResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
	Name   string `json:"name"`
}

// validateRequest carries either an email or an identity token. A token
// takes precedence when both are present.
type validateRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Token string `json:"token" validate:"required_without=Email"`
}

type validateResponse struct {
	Exists bool   `json:"exists"`
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
}

type userResponse struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email,omitempty"`
	Faculty   string        `json:"faculty"`
	Visible   bool          `json:"visible"`
	Mission   string        `json:"mission"`
	Interests interests.Set `json:"interests"`
}

type matchResponse struct {
	SubjectName   string          `json:"subject_name"`
	RankedMatches []matchedPerson `json:"ranked_matches"`
}

type matchedPerson struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Mission         string   `json:"mission"`
	MatchPercent    float64  `json:"match_percent"`
	SharedInterests []string `json:"shared_interests"`
}

// sendMessageRequest requires every field to be present, possibly empty.
type sendMessageRequest struct {
	From *string `json:"from" validate:"required"`
	To   *string `json:"to" validate:"required"`
	Text *string `json:"text" validate:"required"`
}

type messageResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
}

// parseBody decodes the JSON body into dst and validates it. Both failures
// wrap common.ErrorValidation.
func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fmt.Errorf("%w: malformed body: %s", common.ErrorValidation, err.Error())
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", common.ErrorValidation, err.Error())
	}
	return nil
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Faculty:   u.Faculty,
		Visible:   u.Visible,
		Mission:   u.Mission,
		Interests: u.Interests,
	}
}

func toMatchedPeople(ms []matching.Match) []matchedPerson {
	out := make([]matchedPerson, 0, len(ms))
	for _, m := range ms {
		shared := m.SharedInterests
		if shared == nil {
			shared = []string{}
		}
		out = append(out, matchedPerson{
			ID:              m.ID,
			Name:            m.Name,
			Mission:         m.Mission,
			MatchPercent:    m.MatchPercent,
			SharedInterests: shared,
		})
	}
	return out
}

func toMessageResponses(msgs []*models.Message) []messageResponse {
	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageResponse{From: m.From, To: m.To, Text: m.Text})
	}
	return out
}
