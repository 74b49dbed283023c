// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver registers every driver available on the current
// platform. Import it for its side effects:
//
//	import _ "cogentcore.org/glazier/system/driver"
//
// Building with the offscreen tag leaves only the offscreen driver.
package driver

import (
	_ "cogentcore.org/glazier/system/driver/offscreen"
)
