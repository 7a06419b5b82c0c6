package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Gobusters/ectoerror/httperror"
)

// RenderError describes a failure inside the document pipeline with enough
// path information (document type, stage, field) to locate the bad input.
type RenderError struct {
	DocumentType string
	Stage        string
	Field        string
	Message      string
}

func NewRenderError(msg string) *RenderError {
	return &RenderError{
		Message:      msg,
		DocumentType: "",
		Stage:        "",
		Field:        "",
	}
}

func WrapRenderError(e error) *RenderError {
	if e == nil {
		return nil
	}

	if renderError, ok := e.(*RenderError); ok {
		return renderError
	}

	return &RenderError{
		Message:      e.Error(),
		DocumentType: "",
		Stage:        "",
		Field:        "",
	}
}

// NewRenderErrorf creates a new RenderError with a formatted message
func NewRenderErrorf(format string, args ...any) *RenderError {
	// Handle error wrapping directive %w. If one of the args is an error and
	// format contains %w, extract the error message and replace %w with %v.
	for i, arg := range args {
		if err, ok := arg.(error); ok && strings.Contains(format, "%w") {
			format = strings.Replace(format, "%w", "%v", 1)
			args[i] = err.Error()
		}
	}

	return &RenderError{
		Message:      fmt.Sprintf(format, args...),
		DocumentType: "",
		Stage:        "",
		Field:        "",
	}
}

func (e *RenderError) Error() string {
	path := []string{}
	if e.DocumentType != "" {
		path = append(path, fmt.Sprintf("document '%s'", e.DocumentType))
	}
	if e.Stage != "" {
		path = append(path, fmt.Sprintf("stage '%s'", e.Stage))
	}
	if e.Field != "" {
		path = append(path, fmt.Sprintf("field '%s'", e.Field))
	}

	if len(path) == 0 {
		return e.Message
	}

	return strings.Join(path, " -> ") + ": " + e.Message
}

func (e *RenderError) AddDocumentType(documentType string) *RenderError {
	e.DocumentType = documentType
	return e
}

func (e *RenderError) AddStage(stage string) *RenderError {
	e.Stage = stage
	return e
}

func (e *RenderError) AddField(field string) *RenderError {
	e.Field = field
	return e
}

func (e *RenderError) ToHTTPError() *httperror.HTTPError {
	return httperror.NewHTTPError(http.StatusBadRequest, e.Error()).AddMetaValue("document_type", e.DocumentType).AddMetaValue("stage", e.Stage).AddMetaValue("field", e.Field)
}

func IsRenderError(err error) bool {
	_, ok := err.(*RenderError)
	return ok
}
