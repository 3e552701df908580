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

// Package source reads the source of input files.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Stdin is the file name that stands for standard input.
const Stdin = "-"

// ReadAll returns the source of filename. A non-nil src is used instead of
// the file: it must be a string, a []byte or an io.Reader. Otherwise the
// file is read from disk, or from standard input if filename is [Stdin].
func ReadAll(filename string, src any) ([]byte, error) {
	switch src := src.(type) {
	case nil:
	case string:
		return []byte(src), nil
	case []byte:
		return src, nil
	case *bytes.Buffer:
		return src.Bytes(), nil
	case io.Reader:
		return io.ReadAll(src)
	default:
		return nil, fmt.Errorf("invalid source type %T", src)
	}
	if filename == Stdin {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}
