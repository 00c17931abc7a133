// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/staranto/wittygo/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if s, ok := value.(string); ok && strings.HasPrefix(s, "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func OutputValidator(value any) error {
	return OneOfValidator(output.Formats...)(value)
}

// OneOfValidator accepts only the listed strings.
func OneOfValidator(valid ...string) FlagValidatorType {
	return func(value any) error {
		s, _ := value.(string)
		if !slices.Contains(valid, s) {
			return fmt.Errorf("must be one of %v", valid)
		}
		return nil
	}
}

// RangeValidator accepts ints in [min, max].
func RangeValidator(lo int, hi int) FlagValidatorType {
	return func(value any) error {
		n, ok := value.(int)
		if !ok || n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func UnitIntervalValidator(value any) error {
	f, ok := value.(float64)
	if !ok || f < 0 || f > 1 {
		return errors.New("must be between 0 and 1")
	}
	return nil
}
