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

package envflag

import (
	"testing"

	"github.com/go-quicktest/qt"
)

type passFlags struct {
	LogPasses bool
	Lookahead bool `envflag:"default:true"`
	MaxRounds int  `envflag:"default:3"`
	Suffix    string
}

func TestInit(t *testing.T) {
	testCases := []struct {
		name string
		env  string
		want passFlags
		err  string
	}{{
		name: "empty",
		want: passFlags{Lookahead: true, MaxRounds: 3},
	}, {
		name: "just commas",
		env:  ",,",
		want: passFlags{Lookahead: true, MaxRounds: 3},
	}, {
		name: "bool by name",
		env:  "logpasses",
		want: passFlags{LogPasses: true, Lookahead: true, MaxRounds: 3},
	}, {
		name: "case insensitive",
		env:  "LogPasses,lookahead=0",
		want: passFlags{LogPasses: true, MaxRounds: 3},
	}, {
		name: "int and string",
		env:  "maxrounds=7,suffix=$clinit",
		want: passFlags{Lookahead: true, MaxRounds: 7, Suffix: "$clinit"},
	}, {
		name: "unknown",
		env:  "ratchet",
		want: passFlags{Lookahead: true, MaxRounds: 3},
		err:  `cannot parse TEST_VAR: unknown flag "ratchet"`,
	}, {
		name: "missing value",
		env:  "maxrounds",
		want: passFlags{Lookahead: true, MaxRounds: 3},
		err:  `cannot parse TEST_VAR: value needed for int flag "maxrounds"`,
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_VAR", tc.env)
			var x passFlags
			err := Init(&x, "TEST_VAR")
			if tc.err == "" {
				qt.Assert(t, qt.IsNil(err))
			} else {
				qt.Assert(t, qt.ErrorMatches(err, tc.err))
			}
			qt.Assert(t, qt.Equals(x, tc.want))
		})
	}
}

func TestInvalid(t *testing.T) {
	var x passFlags
	err := Parse(&x, "maxrounds=many")
	qt.Assert(t, qt.ErrorIs(err, ErrInvalid))

	err = Parse(&x, "logpasses=maybe")
	qt.Assert(t, qt.ErrorIs(err, ErrInvalid))
}

func TestNames(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(Names[passFlags](), []string{"logpasses", "lookahead", "maxrounds", "suffix"}))
}
