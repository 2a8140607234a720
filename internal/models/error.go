package models

import "errors"

var (
	ErrPartNotFound    = errors.New("part not found")
	ErrBuildNotFound   = errors.New("build not found")
	ErrInvalidArgument = errors.New("invalid argument")

	ErrPartFieldsRequired = errors.New("name, price and type are required")
	ErrUnknownPartType    = errors.New("unknown part type")
)
