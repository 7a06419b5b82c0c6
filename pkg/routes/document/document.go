package document

import (
	"net/http"

	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/generation"
	"github.com/Ramsey-B/fern/pkg/appcontext"
	"github.com/Ramsey-B/fern/pkg/errors"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// Register registers document generation routes
func Register(g *echo.Group) {
	g.POST("/documents/generate", GenerateDocument)
	g.GET("/documents/:id", GetDocument)
	g.GET("/documents", ListDocuments)
}

func GenerateDocument(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "document.GenerateDocument")
	defer span.End()

	req, err := utils.BindRequest[generation.GenerateRequest](c)
	if err != nil {
		return err
	}

	userID := appcontext.GetUserID(ctx)

	ctx, service, err := ectoinject.GetContext[*generation.Service](ctx)
	if err != nil {
		return err
	}

	result, err := service.Generate(ctx, userID, req)
	if err != nil {
		if errors.IsRenderError(err) {
			renderErr := err.(*errors.RenderError)
			return renderErr.ToHTTPError()
		}
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func GetDocument(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "document.GetDocument")
	defer span.End()

	userID := appcontext.GetUserID(ctx)
	id := c.Param("id")

	ctx, service, err := ectoinject.GetContext[*generation.Service](ctx)
	if err != nil {
		return err
	}

	result, err := service.GetDocument(ctx, userID, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func ListDocuments(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "document.ListDocuments")
	defer span.End()

	userID := appcontext.GetUserID(ctx)

	ctx, service, err := ectoinject.GetContext[*generation.Service](ctx)
	if err != nil {
		return err
	}

	result, err := service.ListDocuments(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
