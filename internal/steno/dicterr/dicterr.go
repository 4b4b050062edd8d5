// Package dicterr provides structured error handling for dictionary
// loading. It mirrors the compiler's error-code convention: each failure
// mode gets a stable code, a category, and both a human-readable and a
// machine-readable rendering.
package dicterr

import (
	"encoding/json"
	"fmt"
)

// Code is a stable, unique error code (e.g. "DICT001").
type Code string

// The closed set of dictionary config-error codes.
const (
	// CodeNotObject indicates the top-level JSON value is not an object.
	CodeNotObject Code = "DICT001"
	// CodeInvalidStroke indicates a dictionary key is not a valid stroke sequence.
	CodeInvalidStroke Code = "DICT002"
	// CodeEmptyTranslation indicates a translation string is empty.
	CodeEmptyTranslation Code = "DICT003"
	// CodeUnbalancedBraces indicates a translation has mismatched "{"/"}".
	CodeUnbalancedBraces Code = "DICT004"
	// CodeUnknownSpecial indicates an unrecognized brace-wrapped form.
	CodeUnknownSpecial Code = "DICT005"
	// CodeJSON indicates the document failed to parse as JSON at all.
	CodeJSON Code = "DICT006"
	// CodeInvalidCommand indicates a command object is malformed.
	CodeInvalidCommand Code = "DICT007"
	// CodeNonStringValue indicates a dictionary value is neither a string nor a command object.
	CodeNonStringValue Code = "DICT008"
)

// Category is always CategoryDictionary in this package; it exists to
// keep the shape consistent with the compiler's multi-category error
// scheme, which this core does not need.
type Category string

// CategoryDictionary is the sole error category dictionary loading produces.
const CategoryDictionary Category = "dictionary"

// ConfigError is a structured dictionary-load failure.
type ConfigError struct {
	Code Code `json:"code"`
	// Category is always CategoryDictionary; kept for JSON shape parity
	// with other structured-error producers in the repo.
	Category Category `json:"category"`
	// Message is the primary, human-readable description.
	Message string `json:"message"`
	// Key is the dictionary key involved, if any.
	Key string `json:"key,omitempty"`
	// Layer identifies which loaded document (by index or label) the
	// error came from, if known.
	Layer string `json:"layer,omitempty"`
	// Suggestion is an optional hint for fixing the error.
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return e.Format()
}

// Format renders a human-readable message for terminal output.
func (e *ConfigError) Format() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Layer != "" {
		msg = fmt.Sprintf("%s (layer: %s)", msg, e.Layer)
	}
	if e.Key != "" {
		msg = fmt.Sprintf("%s (key: %q)", msg, e.Key)
	}
	if e.Suggestion != "" {
		msg = fmt.Sprintf("%s\n  suggestion: %s", msg, e.Suggestion)
	}
	return msg
}

// ToJSON renders the error as indented JSON for tooling consumption.
func (e *ConfigError) ToJSON() (string, error) {
	b, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WithKey sets the offending dictionary key.
func (e *ConfigError) WithKey(key string) *ConfigError {
	e.Key = key
	return e
}

// WithLayer sets the source layer identifier.
func (e *ConfigError) WithLayer(layer string) *ConfigError {
	e.Layer = layer
	return e
}

// WithSuggestion sets a remediation hint.
func (e *ConfigError) WithSuggestion(suggestion string) *ConfigError {
	e.Suggestion = suggestion
	return e
}

func newError(code Code, message string) *ConfigError {
	return &ConfigError{Code: code, Category: CategoryDictionary, Message: message}
}

// NewNotObject creates a DICT001 error.
func NewNotObject() *ConfigError {
	return newError(CodeNotObject, "dictionary document is not a JSON object").
		WithSuggestion("wrap the dictionary entries in a single top-level { ... }")
}

// NewInvalidStroke creates a DICT002 error.
func NewInvalidStroke(key string) *ConfigError {
	return newError(CodeInvalidStroke, "invalid stroke key").WithKey(key)
}

// NewEmptyTranslation creates a DICT003 error.
func NewEmptyTranslation(key string) *ConfigError {
	return newError(CodeEmptyTranslation, "translation string is empty").WithKey(key)
}

// NewUnbalancedBraces creates a DICT004 error.
func NewUnbalancedBraces(key, detail string) *ConfigError {
	return newError(CodeUnbalancedBraces, "unbalanced braces: "+detail).WithKey(key)
}

// NewUnknownSpecial creates a DICT005 error.
func NewUnknownSpecial(key, special string) *ConfigError {
	return newError(CodeUnknownSpecial, fmt.Sprintf("unknown special action %q", special)).
		WithKey(key).
		WithSuggestion("see the translation mini-language grammar for supported brace forms")
}

// NewJSONError creates a DICT006 error from an underlying JSON decode failure.
func NewJSONError(cause error) *ConfigError {
	return newError(CodeJSON, "malformed JSON: "+cause.Error())
}

// NewInvalidCommand creates a DICT007 error.
func NewInvalidCommand(key, detail string) *ConfigError {
	return newError(CodeInvalidCommand, "invalid command object: "+detail).WithKey(key)
}

// NewNonStringValue creates a DICT008 error.
func NewNonStringValue(key string) *ConfigError {
	return newError(CodeNonStringValue, "dictionary value is neither a string nor a command object").WithKey(key)
}

// List aggregates errors from a single load so all problems in a layer are
// reported together instead of failing at the first one.
type List []*ConfigError

// Error implements the error interface.
func (l List) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	msg := fmt.Sprintf("%d dictionary error(s):\n", len(l))
	for _, e := range l {
		msg += "  " + e.Format() + "\n"
	}
	return msg
}
