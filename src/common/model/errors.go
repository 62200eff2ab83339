package common_model

import (
	"fmt"

	"github.com/pterm/pterm"
)

// DescriptiveError is the JSON body returned by handlers on failure.
type DescriptiveError struct {
	Description string `json:"description"`
	Error       string `json:"error,omitempty"`
	Source      string `json:"source,omitempty"`
}

func NewParseJsonError(err error) *DescriptiveError {
	return &DescriptiveError{
		Description: "unable to parse JSON body",
		Error:       err.Error(),
		Source:      "body_parser",
	}
}

func NewValidationError(err error) *DescriptiveError {
	return &DescriptiveError{
		Description: "payload validation failed",
		Error:       err.Error(),
		Source:      "validators",
	}
}

func NewApiError(description string, err error, source string) *DescriptiveError {
	e := &DescriptiveError{
		Description: description,
		Source:      source,
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// Send logs the error and returns the body ready for serialization.
func (e *DescriptiveError) Send() *DescriptiveError {
	pterm.DefaultLogger.Warn(
		fmt.Sprintf("%s (%s): %s", e.Description, e.Source, e.Error),
	)
	return e
}
