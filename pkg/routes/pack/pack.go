package pack

import (
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/packaging"
	"github.com/Ramsey-B/fern/pkg/appcontext"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// Register registers filing package routes
func Register(g *echo.Group) {
	g.GET("/documents/package", DownloadPackage)
	g.POST("/documents/package", DownloadSelectedPackage)
}

type PackageRequest struct {
	DocumentIDs []string `json:"document_ids" validate:"required,min=1"`
}

func DownloadPackage(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "pack.DownloadPackage")
	defer span.End()

	userID := appcontext.GetUserID(ctx)

	ctx, service, err := ectoinject.GetContext[*packaging.Service](ctx)
	if err != nil {
		return err
	}

	result, err := service.PackageAll(ctx, userID)
	if err != nil {
		return err
	}

	return writeArchive(c, result)
}

func DownloadSelectedPackage(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "pack.DownloadSelectedPackage")
	defer span.End()

	req, err := utils.BindRequest[PackageRequest](c)
	if err != nil {
		return err
	}

	userID := appcontext.GetUserID(ctx)

	ctx, service, err := ectoinject.GetContext[*packaging.Service](ctx)
	if err != nil {
		return err
	}

	result, err := service.PackageDocuments(ctx, userID, req.DocumentIDs)
	if err != nil {
		return err
	}

	return writeArchive(c, result)
}

func writeArchive(c echo.Context, result packaging.Package) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, result.FileName))
	return c.Blob(http.StatusOK, "application/zip", result.Content)
}
