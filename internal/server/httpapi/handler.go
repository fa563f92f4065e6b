package httpapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/campusmatch/internal/common"
	"github.com/dmitrijs2005/campusmatch/internal/server/services"
)

func (s *HTTPServer) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	user, err := s.users.Register(c.UserContext(), services.RegisterInput{
		Name:      *req.Name,
		Email:     req.Email,
		Faculty:   *req.Faculty,
		Visible:   visible,
		Mission:   *req.Mission,
		Interests: req.Interests,
	})
	if err != nil {
		return err
	}

	s.logger.Info(c.UserContext(), "Registered", "user_id", user.ID)
	return c.Status(fiber.StatusCreated).JSON(registerResponse{Status: "OK", ID: user.ID, Name: user.Name})
}

func (s *HTTPServer) Validate(c *fiber.Ctx) error {
	var req validateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	var (
		res *services.EmailLookup
		err error
	)
	if req.Token != "" {
		res, err = s.users.FindByIdentityToken(c.UserContext(), req.Token)
	} else {
		res, err = s.users.FindByEmail(c.UserContext(), req.Email)
	}
	if err != nil {
		return err
	}

	return c.JSON(validateResponse{Exists: res.Exists, ID: res.ID, Name: res.Name})
}

func (s *HTTPServer) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	user, err := s.users.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(toUserResponse(user))
}

func (s *HTTPServer) Match(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	res, err := s.matches.Match(c.UserContext(), id)
	if err != nil {
		return err
	}
	s.logger.Debug(c.UserContext(), "Ranked matches", "user_id", id, "count", len(res.Matches))

	return c.JSON(matchResponse{SubjectName: res.SubjectName, RankedMatches: toMatchedPeople(res.Matches)})
}

func (s *HTTPServer) SendMessage(c *fiber.Ctx) error {
	var req sendMessageRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if err := s.messages.Send(c.UserContext(), *req.From, *req.To, *req.Text); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "sent"})
}

func (s *HTTPServer) ReadConversation(c *fiber.Ctx) error {
	msgs, err := s.messages.ReadConversation(c.UserContext(), c.Params("a"), c.Params("b"))
	if err != nil {
		return err
	}

	return c.JSON(toMessageResponses(msgs))
}

func (s *HTTPServer) Health(c *fiber.Ctx) error {
	if err := s.store.PingContext(c.UserContext()); err != nil {
		s.logger.Warn(c.UserContext(), "store ping failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer", common.ErrorValidation)
	}
	return int64(id), nil
}
