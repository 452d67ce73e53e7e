// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/latture/threed-beam-fea/cmd"

func main() {
	cmd.Execute()
}
