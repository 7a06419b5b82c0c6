package questionnaire

import (
	"net/http"

	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/questionnaire"
	"github.com/Ramsey-B/fern/pkg/appcontext"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/responses"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// Register registers questionnaire response routes
func Register(g *echo.Group) {
	g.PUT("/questionnaires/:id", SaveQuestionnaire)
	g.GET("/questionnaires/:id", GetQuestionnaire)
}

type SaveRequest struct {
	County  string              `json:"county"`
	Status  string              `json:"status" validate:"omitempty,oneof=in_progress completed"`
	Answers responses.Responses `json:"answers" validate:"required"`
}

func SaveQuestionnaire(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "questionnaire.SaveQuestionnaire")
	defer span.End()

	req, err := utils.BindRequest[SaveRequest](c)
	if err != nil {
		return err
	}

	userID := appcontext.GetUserID(ctx)

	ctx, service, err := ectoinject.GetContext[*questionnaire.Service](ctx)
	if err != nil {
		return err
	}

	result, err := service.Save(ctx, userID, models.QuestionnaireResponse{
		ID:      c.Param("id"),
		County:  req.County,
		Status:  models.QuestionnaireStatus(req.Status),
		Answers: req.Answers,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func GetQuestionnaire(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "questionnaire.GetQuestionnaire")
	defer span.End()

	userID := appcontext.GetUserID(ctx)

	ctx, service, err := ectoinject.GetContext[*questionnaire.Service](ctx)
	if err != nil {
		return err
	}

	result, err := service.GetByID(ctx, userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
