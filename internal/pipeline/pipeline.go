// Copyright (C) 2021  Xumm Community
// This file is part of github.com/xumm-community/xc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Pipeline package
//
// Commands that compose payload requests write them to stdout, and
// "xc-tx submit" reads them from stdin.  Pipeline helpers encode and
// decode the stream.  Pipeline uses JSON as the underlying encoding,
// one indented object per request.
package pipeline

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/xumm-community/xc/xumm"
)

func DecodeInput(c chan<- xumm.Request, r io.Reader) error {
	dec := json.NewDecoder(r)

	for dec.More() {
		req := xumm.Request{}
		err := dec.Decode(&req)
		if err != nil {
			if errors.Is(err, io.EOF) { // not reached
				break
			}
			return err
		}
		if req.Payload.TxJSON == nil {
			return errors.New("pipeline: request without txjson")
		}
		c <- req
	}
	return nil
}

func EncodeOutput(w io.Writer, c <-chan xumm.Request) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")

	for req := range c {
		err := enc.Encode(req)
		if err != nil {
			return err
		}
	}
	return nil
}
