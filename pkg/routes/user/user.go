package user

import (
	"net/http"

	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/labstack/echo/v4"
)

// Register registers user data routes
func Register(g *echo.Group) {
	g.DELETE("/users/:user_id", deleteUserData)
}

// deleteUserData deletes all data for a specific user
// This is intended for testing purposes to clean up test data
func deleteUserData(c echo.Context) error {
	ctx := c.Request().Context()

	userID := c.Param("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "user_id is required",
		})
	}

	ctx, db, err := ectoinject.GetContext[database.DB](ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to get database",
		})
	}

	ctx, logger, _ := ectoinject.GetContext[ectologger.Logger](ctx)
	if logger != nil {
		logger.WithContext(ctx).WithFields(map[string]any{"user_id": userID}).Info("Deleting all data for user")
	}

	// Delete documents first (they reference questionnaire responses)
	documentsResult, err := db.ExecContext(ctx, "DELETE FROM documents WHERE user_id = $1", userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to delete documents",
		})
	}
	documentsCount, _ := documentsResult.RowsAffected()

	responsesResult, err := db.ExecContext(ctx, "DELETE FROM questionnaire_responses WHERE user_id = $1", userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to delete questionnaire responses",
		})
	}
	responsesCount, _ := responsesResult.RowsAffected()

	if logger != nil {
		logger.WithContext(ctx).WithFields(map[string]any{
			"user_id":                 userID,
			"documents":               documentsCount,
			"questionnaire_responses": responsesCount,
		}).Info("User data deleted")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":                 "user data deleted",
		"user_id":                 userID,
		"documents":               documentsCount,
		"questionnaire_responses": responsesCount,
	})
}
