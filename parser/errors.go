package parser

import "errors"

// ErrEmptyInput is returned by ParseLines when the text is empty or blank.
var ErrEmptyInput = errors.New("menu text is empty")
