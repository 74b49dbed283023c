// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (linux || freebsd || netbsd || openbsd) && !(android || offscreen)

package driver

import (
	_ "cogentcore.org/glazier/system/driver/x11"
)
