package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AnalyzeRequest is the inbound request for analyzing an essay.
// Theme and Title are pass-through metadata attached to the report.
type AnalyzeRequest struct {
	Text  string `json:"text" validate:"required"`
	Theme string `json:"theme,omitempty" validate:"max=300"`
	Title string `json:"title,omitempty" validate:"max=300"`
}

// Validate checks the request. Text consisting only of whitespace is rejected.
func (r *AnalyzeRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &ValidationError{Field: "text", Message: "Texto não fornecido"}
	}
	return translate(validate.Struct(r))
}

// StudentInfo identifies the author of an essay.
type StudentInfo struct {
	Name  string `json:"name" validate:"required,max=200"`
	Class string `json:"class" validate:"required,max=200"`
}

// SaveResultsRequest asks the server to archive a finished analysis.
type SaveResultsRequest struct {
	StudentInfo     StudentInfo  `json:"studentInfo"`
	Theme           string       `json:"theme,omitempty" validate:"max=300"`
	TeacherComments string       `json:"teacherComments,omitempty"`
	EssayAnalysis   *EssayReport `json:"essayAnalysis" validate:"required"`
}

// Validate checks the request.
func (r *SaveResultsRequest) Validate() error {
	if err := translate(validate.Struct(r)); err != nil {
		return err
	}
	if strings.TrimSpace(r.EssayAnalysis.Text) == "" {
		return &ValidationError{Field: "essayAnalysis.text", Message: "Texto não fornecido"}
	}
	return nil
}

// ValidationError reports an invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// translate converts validator errors into a ValidationError for the first failing field.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed on '%s' rule", fe.Tag()),
		}
	}
	return &ValidationError{Field: "(request)", Message: err.Error()}
}
