// Copyright 2026 The JSComp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package envflag parses comma separated flag lists, such as the value of
// JSCOMP_DEBUG, into the fields of a struct.
package envflag

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Init uses Parse with the contents of the given environment variable as input.
func Init[T any](flags *T, envVar string) error {
	if err := Parse(flags, os.Getenv(envVar)); err != nil {
		return fmt.Errorf("cannot parse %s: %w", envVar, err)
	}
	return nil
}

// Parse initializes the fields in flags from the attached struct field tags as
// well as the contents of the given string.
//
// A field tag may set a default other than the zero value, as in
// `envflag:"default:true"`.
//
// The string is a comma-separated list of name=value pairs. A boolean flag
// may be given by its name alone, meaning name=true. Names are the
// lower-cased field names. Boolean values are parsed via [strconv.ParseBool],
// integers via [strconv.Atoi], and strings are accepted as-is.
func Parse[T any](flags *T, env string) error {
	fs, err := newFlagSet(reflect.ValueOf(flags).Elem())
	if err != nil {
		return err
	}

	var errs []error
	for _, elem := range strings.Split(env, ",") {
		// Empty elements allow joining values, as in
		// JSCOMP_DEBUG=$JSCOMP_DEBUG,strict.
		if elem == "" {
			continue
		}
		if err := fs.set(elem); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Names returns the flag names of T in field order.
func Names[T any]() []string {
	var x T
	t := reflect.TypeOf(x)
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		names = append(names, strings.ToLower(t.Field(i).Name))
	}
	return names
}

type flagSet struct {
	v     reflect.Value
	index map[string]int
}

func newFlagSet(v reflect.Value) (*flagSet, error) {
	fs := &flagSet{v: v, index: map[string]int{}}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.ToLower(field.Name)
		fs.index[name] = i
		tag, ok := field.Tag.Lookup("envflag")
		if !ok {
			continue
		}
		key, def, _ := strings.Cut(tag, ":")
		if key != "default" {
			return nil, fmt.Errorf("unknown envflag tag %q", tag)
		}
		val, err := parseValue(name, field.Type.Kind(), def)
		if err != nil {
			return nil, err
		}
		v.Field(i).Set(reflect.ValueOf(val).Convert(field.Type))
	}
	return fs, nil
}

func (fs *flagSet) set(elem string) error {
	name, str, hasValue := strings.Cut(elem, "=")
	i, ok := fs.index[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown flag %q", elem)
	}
	field := fs.v.Field(i)
	switch {
	case hasValue:
	case field.Kind() == reflect.Bool:
		str = "true"
	default:
		return fmt.Errorf("value needed for %s flag %q", field.Kind(), name)
	}
	val, err := parseValue(name, field.Kind(), str)
	if err != nil {
		return err
	}
	field.Set(reflect.ValueOf(val).Convert(field.Type()))
	return nil
}

func parseValue(name string, kind reflect.Kind, str string) (val any, err error) {
	switch kind {
	case reflect.Bool:
		val, err = strconv.ParseBool(str)
	case reflect.Int:
		val, err = strconv.Atoi(str)
	case reflect.String:
		val = str
	default:
		return nil, errInvalid{fmt.Errorf("unsupported kind %s", kind)}
	}
	if err != nil {
		return nil, errInvalid{fmt.Errorf("invalid %s value for %s: %v", kind, name, err)}
	}
	return val, nil
}

// An ErrInvalid indicates a malformed input string.
var ErrInvalid = errors.New("invalid value")

type errInvalid struct{ error }

func (errInvalid) Is(err error) bool {
	return err == ErrInvalid
}
