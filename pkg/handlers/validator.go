package handlers

import (
	"fmt"
	"unicode/utf8"
)

type Validator struct {
	field string
	value *string
}

func (rv *Validator) Required() error {
	if rv.value == nil {
		return fmt.Errorf("%s is required", rv.field)
	}

	return nil
}

func (rv *Validator) Empty() error {
	if utf8.RuneCountInString(*rv.value) == 0 {
		return fmt.Errorf("%s cannot be blank", rv.field)
	}

	return nil
}

func (rv *Validator) MinLength(min int) error {
	if utf8.RuneCountInString(*rv.value) < min {
		return fmt.Errorf("%s must be at least %d characters long", rv.field, min)
	}

	return nil
}

func (rv *Validator) MaxLength(max int) error {
	if utf8.RuneCountInString(*rv.value) > max {
		return fmt.Errorf("%s must be at most %d characters long", rv.field, max)
	}

	return nil
}
