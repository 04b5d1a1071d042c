// Package errors provides structured error handling for the binder packages.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindProperty indicates a setter lookup for a property the component does not support.
	KindProperty
	// KindThread indicates a binding operation that ran off the UI thread.
	KindThread
	// KindScene indicates a scene document that could not be parsed or built.
	KindScene
	// KindConfig indicates an invalid settings file.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindProperty:
		return "property"
	case KindThread:
		return "thread"
	case KindScene:
		return "scene"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BindError represents a structured error raised by the binding layer.
type BindError struct {
	// Op is the operation that failed (e.g., "bind.Setters.Set").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Component is the name of the component involved, if any.
	Component string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BindError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "host.Update").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a scene or settings value that has the wrong shape.
type ParseError struct {
	// Path locates the value inside its document (e.g., "root.children[2].items").
	Path string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s at %s: got %T", e.DataType, e.Path, e.Got)
}

// PropertyError reports a property that is absent from a component's setter map.
type PropertyError struct {
	// Property is the requested property name.
	Property string
	// Suggestion is the closest supported property, if one is near enough.
	Suggestion string
}

func (e *PropertyError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unsupported property %q (did you mean %q?)", e.Property, e.Suggestion)
	}
	return fmt.Sprintf("unsupported property %q", e.Property)
}

// ErrorHandler receives errors reported by the binder packages.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BindError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
