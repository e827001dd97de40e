// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagsFromParams creates a [pflag.FlagSet] with flags bound to the tagged
// fields of params. params must be a pointer to a struct. Panics on
// invalid input (programming error, not runtime data).
//
//	var params getParams
//	command := &cli.Command{
//	    Flags: func() *pflag.FlagSet {
//	        return cli.FlagsFromParams("get", &params)
//	    },
//	    Run: func(args []string) error {
//	        // params fields are populated after flag parsing
//	    },
//	}
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers pflag entries for each tagged field in params.
// params must be a pointer to a struct.
//
// Struct tags:
//
//   - flag:"name" or flag:"name,n": long name and optional shorthand.
//     Fields without a flag tag are skipped.
//   - desc:"help text"
//   - default:"value", parsed like a command-line value.
//
// Field types are string, bool, and any type whose pointer implements
// [encoding.TextUnmarshaler] (delimiter sets, compression modes).
// Embedded structs are bound recursively, so option groups such as the
// segment input flags are declared once. A flag name or shorthand used
// twice across the embedded groups is an error.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}

	specs, err := collectFlags(value.Elem(), nil)
	if err != nil {
		return err
	}
	if err := checkDuplicates(specs); err != nil {
		return err
	}
	for _, spec := range specs {
		if err := spec.register(flagSet); err != nil {
			return fmt.Errorf("field %s: %w", spec.field, err)
		}
	}
	return nil
}

// flagSpec is one tagged field, resolved before registration.
type flagSpec struct {
	field        string
	name         string
	shorthand    string
	description  string
	defaultValue string
	target       any
}

func collectFlags(structValue reflect.Value, specs []flagSpec) ([]flagSpec, error) {
	structType := structValue.Type()
	for i := range structType.NumField() {
		field := structType.Field(i)
		fieldValue := structValue.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			var err error
			if specs, err = collectFlags(fieldValue, specs); err != nil {
				return nil, fmt.Errorf("embedded %s: %w", field.Name, err)
			}
			continue
		}

		tag := field.Tag.Get("flag")
		if tag == "" {
			continue
		}
		if !fieldValue.CanSet() {
			return nil, fmt.Errorf("field %s: not settable", field.Name)
		}

		name, shorthand := parseFlagTag(tag)
		specs = append(specs, flagSpec{
			field:        field.Name,
			name:         name,
			shorthand:    shorthand,
			description:  field.Tag.Get("desc"),
			defaultValue: field.Tag.Get("default"),
			target:       fieldValue.Addr().Interface(),
		})
	}
	return specs, nil
}

func checkDuplicates(specs []flagSpec) error {
	owners := make(map[string]string, len(specs))
	for _, spec := range specs {
		keys := []string{"--" + spec.name}
		if spec.shorthand != "" {
			keys = append(keys, "-"+spec.shorthand)
		}
		for _, key := range keys {
			if owner, taken := owners[key]; taken {
				return fmt.Errorf("flag %s declared by both %s and %s", key, owner, spec.field)
			}
			owners[key] = spec.field
		}
	}
	return nil
}

// parseFlagTag splits "name" into ("name", "") and "name,n" into ("name", "n").
func parseFlagTag(tag string) (string, string) {
	name, shorthand, _ := strings.Cut(tag, ",")
	return name, shorthand
}

func (spec flagSpec) register(flagSet *pflag.FlagSet) error {
	switch target := spec.target.(type) {
	case *string:
		flagSet.StringVarP(target, spec.name, spec.shorthand, spec.defaultValue, spec.description)

	case *bool:
		defaultValue := false
		if spec.defaultValue != "" {
			parsed, err := strconv.ParseBool(spec.defaultValue)
			if err != nil {
				return fmt.Errorf("default for --%s: %w", spec.name, err)
			}
			defaultValue = parsed
		}
		flagSet.BoolVarP(target, spec.name, spec.shorthand, defaultValue, spec.description)

	case encoding.TextUnmarshaler:
		value := &textValue{target: target, typeName: reflect.TypeOf(target).Elem().Name()}
		if spec.defaultValue != "" {
			if err := value.Set(spec.defaultValue); err != nil {
				return fmt.Errorf("default for --%s: %w", spec.name, err)
			}
		}
		flagSet.VarP(value, spec.name, spec.shorthand, spec.description)

	default:
		return fmt.Errorf("unsupported type %T for flag --%s", spec.target, spec.name)
	}
	return nil
}

// textValue adapts an encoding.TextUnmarshaler to pflag.Value, so the
// flag is validated by UnmarshalText while flags are parsed.
type textValue struct {
	target   encoding.TextUnmarshaler
	text     string
	typeName string
}

func (v *textValue) Set(text string) error {
	if err := v.target.UnmarshalText([]byte(text)); err != nil {
		return err
	}
	v.text = text
	return nil
}

func (v *textValue) String() string { return v.text }

func (v *textValue) Type() string {
	if v.typeName == "" {
		return "value"
	}
	return strings.ToLower(v.typeName)
}
